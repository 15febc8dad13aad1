// Package rules provides the fixed battery of documentation rules for pep257.
//
// # Rules
//
//   - Presence:
//
//   - D100-D104, R101-R103: missing-docs - Public declarations must be documented
//
//   - Whitespace:
//
//   - D201: no-blank-line-before - No blank lines before the docstring text
//
//   - D202: no-blank-line-after - No blank lines after the docstring text
//
//   - D205: blank-line-after-summary - One blank line between summary and description
//
//   - Quoting:
//
//   - D301: backslash-escaping - Prefer raw strings over escaped backslashes
//
//   - Summary line:
//
//   - D400: summary-punctuation - First line ends with a period
//
//   - D401: imperative-mood - First line is in the imperative mood
//
//   - D402: no-signature - First line is not the function's signature
//
//   - D403: capitalized-summary - First word is capitalized
//
//   - Intra-doc links:
//
//   - D405: code-reference-backticks - Code-like link text is wrapped in backticks
//
//   - D406: common-type-backticks - Common std types use inline code
//
// # Rule IDs
//
// D-codes follow the pydocstyle numbering where a PEP 257 rule has a Rust
// equivalent. R-codes cover declaration kinds Python does not have.
//
// # Registration
//
// The rule set is fixed. Default returns the shared registry with default
// options; NewRegistry builds one for non-default Options.
package rules
