// Package parse turns a textual RDATA block — folded RRULE/EXRULE/
// RDATE/EXDATE content lines, per RFC 5545 §3.1 — into rrule.Rule and
// date-list values, and assembles them into the compound iterator the
// rrule package exposes.
package parse
