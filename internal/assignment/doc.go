// Package assignment holds the cleaning-duty rules that do not touch
// storage: expanding an assignment into per student, per task rows, the
// status lifecycle, report aggregation and seeded student sampling.
//
// Every function here is a pure function of its inputs. Callers load the
// assignments and reference data and re-run Expand on every read.
package assignment
