package api

import "mmscan/internal/scan"

// Unit is one ABAP code unit (program, include, or fragment) as submitted
// by the caller. The scanner only reads Code; the remaining fields are
// carried through untouched.
type Unit struct {
	PgmName             string  `json:"pgm_name"`
	IncName             string  `json:"inc_name"`
	Type                string  `json:"type"`
	Name                *string `json:"name"`
	ClassImplementation *string `json:"class_implementation"`
	StartLine           *int    `json:"start_line"`
	EndLine             *int    `json:"end_line"`
	Code                string  `json:"code"`
}

// AnnotatedUnit is a unit with its remediation suggestions merged in under
// the fixed mb_txn_usage key.
type AnnotatedUnit struct {
	Unit
	MbTxnUsage []scan.Suggestion `json:"mb_txn_usage"`
}
