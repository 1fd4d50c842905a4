// Package delegated parses RIR statistics exchange files ("delegated-extended").
//
// Each Regional Internet Registry publishes a daily pipe-delimited file:
//
//	2.3|ripencc|1637535599|123456|19700101|20211122|+0100     version line
//	ripencc|*|asn|*|35123|summary                              summary lines
//	ripencc|NL|asn|1877|1|19930901|allocated|b1b3...           records
//	ripencc||asn|7|1||available|                               free resources
//
// Lines starting with '#' are comments. Reader skips comments, the version
// line and summary lines, and yields one Record per resource line.
//
// Candidates combines a Reader with a Predicate to extract the integer start
// values of matching rows; FreeASN selects unassigned AS numbers.
package delegated
