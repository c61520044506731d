package dialect

// AutoIncrementStyle describes how a dialect spells auto-increment on a
// primary key column.
type AutoIncrementStyle int

const (
	// AutoIncrementSuffix appends a keyword after the column type
	// (MySQL AUTO_INCREMENT, SQLite AUTOINCREMENT).
	AutoIncrementSuffix AutoIncrementStyle = iota
	// AutoIncrementTypeName relies on the column type itself
	// (Postgres SERIAL/BIGSERIAL); no extra keyword is emitted.
	AutoIncrementTypeName
	// AutoIncrementGenerated emits an identity clause
	// (SQL Server IDENTITY(1,1)).
	AutoIncrementGenerated
)

// Capability is the static feature matrix for one dialect. Validators
// reject specs that ask for an unsupported feature; synthesizers consult
// the same matrix so they never emit a clause validation would refuse.
type Capability struct {
	// Trigger features.
	SupportsBeforeTrigger      bool
	SupportsInsteadOfTrigger   bool
	SupportsTruncateTrigger    bool
	SupportsStatementLevel     bool
	SupportsWhenCondition      bool
	SupportsUpdateColumns      bool
	RequiresFunctionForTrigger bool

	// Function features.
	SupportsFunctions     bool
	SupportsReturnsTable  bool
	SupportsOutParameters bool
	SupportsVolatility    bool
	SupportsSecurityMode  bool

	// Row-level security.
	SupportsPolicies bool

	// Identifier quoting. CloseQuote differs from QuoteChar only for
	// bracket-quoting dialects.
	QuoteChar  byte
	CloseQuote byte

	// Column synthesis.
	AutoIncrementStyle   AutoIncrementStyle
	AutoIncrementKeyword string

	// Migration features.
	SupportsCascade             bool
	SupportsCreateOrReplaceView bool
	SupportsAlterColumnType     bool
}

// All is the capability registry, one entry per supported dialect.
var All = map[Dialect]Capability{
	Postgres: {
		SupportsBeforeTrigger:      true,
		SupportsInsteadOfTrigger:   true,
		SupportsTruncateTrigger:    true,
		SupportsStatementLevel:     true,
		SupportsWhenCondition:      true,
		SupportsUpdateColumns:      true,
		RequiresFunctionForTrigger: true,

		SupportsFunctions:     true,
		SupportsReturnsTable:  true,
		SupportsOutParameters: true,
		SupportsVolatility:    true,
		SupportsSecurityMode:  true,

		SupportsPolicies: true,

		QuoteChar:  '"',
		CloseQuote: '"',

		AutoIncrementStyle:   AutoIncrementTypeName,
		AutoIncrementKeyword: "",

		SupportsCascade:             true,
		SupportsCreateOrReplaceView: true,
		SupportsAlterColumnType:     true,
	},
	MySQL: {
		SupportsBeforeTrigger:      true,
		SupportsInsteadOfTrigger:   false,
		SupportsTruncateTrigger:    false,
		SupportsStatementLevel:     false,
		SupportsWhenCondition:      false,
		SupportsUpdateColumns:      false,
		RequiresFunctionForTrigger: false,

		SupportsFunctions:     true,
		SupportsReturnsTable:  false,
		SupportsOutParameters: true,
		SupportsVolatility:    false,
		SupportsSecurityMode:  true,

		SupportsPolicies: false,

		QuoteChar:  '`',
		CloseQuote: '`',

		AutoIncrementStyle:   AutoIncrementSuffix,
		AutoIncrementKeyword: "AUTO_INCREMENT",

		SupportsCascade:             false,
		SupportsCreateOrReplaceView: true,
		SupportsAlterColumnType:     true,
	},
	SQLite: {
		SupportsBeforeTrigger:      true,
		SupportsInsteadOfTrigger:   true,
		SupportsTruncateTrigger:    false,
		SupportsStatementLevel:     false,
		SupportsWhenCondition:      true,
		SupportsUpdateColumns:      true,
		RequiresFunctionForTrigger: false,

		SupportsFunctions:     false,
		SupportsReturnsTable:  false,
		SupportsOutParameters: false,
		SupportsVolatility:    false,
		SupportsSecurityMode:  false,

		SupportsPolicies: false,

		QuoteChar:  '"',
		CloseQuote: '"',

		AutoIncrementStyle:   AutoIncrementSuffix,
		AutoIncrementKeyword: "AUTOINCREMENT",

		SupportsCascade:             false,
		SupportsCreateOrReplaceView: false,
		SupportsAlterColumnType:     false,
	},
	MSSQL: {
		SupportsBeforeTrigger:      false,
		SupportsInsteadOfTrigger:   true,
		SupportsTruncateTrigger:    false,
		SupportsStatementLevel:     true,
		SupportsWhenCondition:      false,
		SupportsUpdateColumns:      false,
		RequiresFunctionForTrigger: false,

		SupportsFunctions:     true,
		SupportsReturnsTable:  true,
		SupportsOutParameters: true,
		SupportsVolatility:    false,
		SupportsSecurityMode:  true,

		SupportsPolicies: false,

		QuoteChar:  '[',
		CloseQuote: ']',

		AutoIncrementStyle:   AutoIncrementGenerated,
		AutoIncrementKeyword: "IDENTITY(1,1)",

		SupportsCascade:             false,
		SupportsCreateOrReplaceView: false,
		SupportsAlterColumnType:     true,
	},
}

// Cap returns the capability matrix for d. Unknown dialects get a zero
// matrix, which rejects every optional feature.
func Cap(d Dialect) Capability {
	return All[d]
}
