package sqltext

import "sort"

// sqlKeywords is the fixed statement-keyword set. Tokenize canonicalizes any
// case variant of these to an uppercase Keyword token.
var sqlKeywords = []string{
	"SELECT", "FROM", "WHERE", "AND", "OR", "NOT", "IN", "BETWEEN", "LIKE",
	"IS", "NULL", "AS", "ON", "JOIN", "LEFT", "RIGHT", "INNER", "OUTER",
	"CROSS", "FULL", "NATURAL", "GROUP", "BY", "ORDER", "ASC", "DESC",
	"LIMIT", "OFFSET", "HAVING", "DISTINCT", "UNION", "ALL", "EXISTS",
	"CASE", "WHEN", "THEN", "ELSE", "END", "CAST", "IF", "TRUE", "FALSE",
	"WITH", "OVER", "PARTITION", "ROWS", "RANGE", "UNNEST", "EXCEPT",
	"INTERSECT", "INSERT", "INTO", "VALUES", "UPDATE", "SET", "DELETE",
	"CREATE", "TABLE", "STRUCT", "ARRAY",
}

// sqlFunctions is the fixed function set offered by completions and styled by
// the highlighter. The remote engine's SQL surface is large; this covers the
// functions log queries actually reach for.
var sqlFunctions = []string{
	// Aggregates
	"COUNT", "SUM", "AVG", "MIN", "MAX", "ANY_VALUE", "ARRAY_AGG",
	"STRING_AGG", "COUNTIF", "LOGICAL_AND", "LOGICAL_OR",
	"APPROX_COUNT_DISTINCT", "APPROX_QUANTILES", "APPROX_TOP_COUNT",
	"APPROX_TOP_SUM",

	// Analytic / window
	"ROW_NUMBER", "RANK", "DENSE_RANK", "PERCENT_RANK", "CUME_DIST",
	"NTILE", "LAG", "LEAD", "FIRST_VALUE", "LAST_VALUE", "NTH_VALUE",
	"PERCENTILE_CONT", "PERCENTILE_DISC",

	// Date / time
	"CURRENT_DATE", "CURRENT_TIMESTAMP", "CURRENT_DATETIME", "CURRENT_TIME",
	"DATE", "DATETIME", "TIME", "TIMESTAMP",
	"DATE_ADD", "DATE_SUB", "DATE_DIFF", "DATE_TRUNC",
	"DATETIME_ADD", "DATETIME_SUB", "DATETIME_DIFF", "DATETIME_TRUNC",
	"TIMESTAMP_ADD", "TIMESTAMP_SUB", "TIMESTAMP_DIFF", "TIMESTAMP_TRUNC",
	"TIME_ADD", "TIME_SUB", "TIME_DIFF", "TIME_TRUNC",
	"EXTRACT", "FORMAT_DATE", "FORMAT_DATETIME", "FORMAT_TIMESTAMP",
	"FORMAT_TIME", "PARSE_DATE", "PARSE_DATETIME", "PARSE_TIMESTAMP",
	"PARSE_TIME", "UNIX_SECONDS", "UNIX_MILLIS", "UNIX_MICROS",
	"TIMESTAMP_SECONDS", "TIMESTAMP_MILLIS", "TIMESTAMP_MICROS",

	// Strings
	"CONCAT", "LENGTH", "LOWER", "UPPER", "TRIM", "LTRIM", "RTRIM",
	"SUBSTR", "SUBSTRING", "REPLACE", "REVERSE", "REPEAT",
	"STARTS_WITH", "ENDS_WITH", "CONTAINS_SUBSTR",
	"REGEXP_CONTAINS", "REGEXP_EXTRACT", "REGEXP_EXTRACT_ALL",
	"REGEXP_REPLACE", "SPLIT", "FORMAT", "LPAD", "RPAD",
	"BYTE_LENGTH", "CHAR_LENGTH", "CHARACTER_LENGTH",

	// Null handling and casting
	"IFNULL", "NULLIF", "COALESCE", "SAFE_CAST",

	// Math
	"ABS", "SIGN", "ROUND", "TRUNC", "CEIL", "CEILING", "FLOOR",
	"MOD", "DIV", "SAFE_DIVIDE", "POWER", "POW", "SQRT", "EXP",
	"LN", "LOG", "LOG10", "LOG2", "GREATEST", "LEAST", "RAND",
	"GENERATE_ARRAY",

	// JSON
	"JSON_EXTRACT", "JSON_EXTRACT_SCALAR", "JSON_VALUE", "JSON_QUERY",
	"TO_JSON_STRING", "PARSE_JSON",

	// Arrays
	"ARRAY_LENGTH", "ARRAY_TO_STRING", "ARRAY_REVERSE", "ARRAY_CONCAT",

	// Hashing
	"MD5", "SHA1", "SHA256", "SHA512",
}

var (
	keywordSet  = make(map[string]bool, len(sqlKeywords))
	functionSet = make(map[string]bool, len(sqlFunctions))

	// Alphabetical copies keep completion ordering deterministic.
	sortedKeywords  []string
	sortedFunctions []string
)

func init() {
	for _, kw := range sqlKeywords {
		keywordSet[kw] = true
	}
	for _, fn := range sqlFunctions {
		functionSet[fn] = true
	}
	sortedKeywords = sortedCopy(sqlKeywords)
	sortedFunctions = sortedCopy(sqlFunctions)
}

func sortedCopy(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}
