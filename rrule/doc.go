/*
Package rrule implements the core of an RFC 5545/2445 recurrence
expansion engine: generators, filters, set-position selection, and
terminating conditions that turn a single RRULE into a monotonically
increasing lazy sequence of occurrences, plus a compound iterator that
merges several such sequences and subtracts excluded ones on the fly.

The design follows com.google.ical.iter.RecurrenceIteratorFactory:
a working date is threaded through a chain of per-period Generators
(year, month, day), Filters reject candidates that survive the
generator chain but don't match a secondary BY-part, and a Condition
decides when the sequence terminates.

Sub-package parse turns textual RRULE/RDATE/EXRULE/EXDATE content
lines into the Rule and []DateValue list values this package consumes, kept
separate from the core so the generator/filter/condition machinery
never has to know about text formats.
*/
package rrule
