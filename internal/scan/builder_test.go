package scan

import "testing"

func TestBuildStatement(t *testing.T) {
	testCases := []struct {
		name         string
		category     Category
		replacements []string
		keyword      string
		want         string
	}{
		{
			name:         "transaction call form",
			category:     CategoryTransaction,
			replacements: []string{"ME21N"},
			keyword:      "CALL TRANSACTION",
			want:         "CALL TRANSACTION 'ME21N'.",
		},
		{
			name:         "transaction submit form",
			category:     CategoryTransaction,
			replacements: []string{"ME29N"},
			keyword:      "SUBMIT",
			want:         "SUBMIT ME29N.",
		},
		{
			name:         "transaction keyword case ignored",
			category:     CategoryTransaction,
			replacements: []string{"ME29N"},
			keyword:      "submit",
			want:         "SUBMIT ME29N.",
		},
		{
			name:         "transaction split joined with or",
			category:     CategoryTransaction,
			replacements: []string{"ME21N", "ME22N"},
			keyword:      "CALL TRANSACTION",
			want:         "CALL TRANSACTION 'ME21N'. or CALL TRANSACTION 'ME22N'.",
		},
		{
			name:         "transaction split submit form",
			category:     CategoryTransaction,
			replacements: []string{"ME21N", "ME22N"},
			keyword:      "SUBMIT",
			want:         "SUBMIT ME21N. or SUBMIT ME22N.",
		},
		{
			name:         "function module always call function",
			category:     CategoryFunctionModule,
			replacements: []string{"BAPI_PR_CREATE"},
			keyword:      "CALL FUNCTION",
			want:         "CALL FUNCTION 'BAPI_PR_CREATE'.",
		},
		{
			name:         "report always submit",
			category:     CategoryReport,
			replacements: []string{"RM06EV70"},
			keyword:      "SUBMIT",
			want:         "SUBMIT RM06EV70.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := buildStatement(tc.category, tc.replacements, tc.keyword)
			if got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestArchiveNote(t *testing.T) {
	got := archiveNote("MM_EBAN")
	want := "Archiving Object MM_EBAN: use *70 reports (EhP4+)."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
