package dialect

import "strings"

// reservedWords are SQL keywords that force identifier quoting in every
// dialect. Matching is case-insensitive.
var reservedWords = map[string]bool{
	"select": true, "from": true, "where": true, "insert": true,
	"update": true, "delete": true, "create": true, "drop": true,
	"alter": true, "table": true, "view": true, "index": true,
	"and": true, "or": true, "not": true, "null": true,
	"true": true, "false": true, "as": true, "on": true,
	"join": true, "left": true, "right": true, "inner": true,
	"outer": true, "full": true, "order": true, "by": true,
	"group": true, "having": true, "limit": true, "offset": true,
	"union": true, "all": true, "distinct": true, "into": true,
	"values": true, "set": true, "default": true, "primary": true,
	"key": true, "foreign": true, "references": true, "constraint": true,
	"unique": true, "check": true, "case": true, "when": true,
	"then": true, "else": true, "end": true, "if": true,
	"exists": true, "in": true, "between": true, "like": true,
	"is": true, "user": true, "role": true, "grant": true,
	"revoke": true, "schema": true, "database": true, "public": true,
	"policy": true, "using": true, "force": true,
}

// IsReservedWord reports whether name collides with a SQL keyword,
// ignoring case.
func IsReservedWord(name string) bool {
	return reservedWords[strings.ToLower(name)]
}
