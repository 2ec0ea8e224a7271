/*
Package markup renders a small nested-tag language into terminal escape codes.

# Core Functions

The package offers three main functions:
  - Parse: renders markup into an escape-coded string
  - Clear: removes escape sequences and returns the plain text
  - CleanLength: counts the characters outside escape sequences

# Tags

Style tags wrap text in a fixed SGR code from the style table and a reset:

	<bold>Hello</bold>  // "\x1b[1mHello\x1b[0m"

Available styles by default: bold, dim, italic, underline, blink, reverse,
hide and strikethrough. Custom tables are passed with WithStyles.

# Colors and gradients

Hex tags color every visible character of their content with a 24-bit
foreground code. Equal tags give a solid color, different tags a linear
gradient from the opening color to the closing one:

	<#ff0000>solid red</#ff0000>
	<#ff0000>red to green</#00ff00>

A :bg suffix on both tags targets the background instead. When only one of
the two carries the suffix the foreground is used.

# Priority

Scopes are reduced innermost first and each reduction wraps its own text, so
an outer color is written after an inner one for every character both
cover. Terminals apply the latest code of a channel, so the outer color
wins when both target the same channel:

	<#ff0000><#ff0000>Hello</#00ff00></#ff0000>

renders solid red. The inner codes stay in the output.

# Tags as text

A backslash right before a tag keeps it as literal text and is removed:

	\<bold>\</bold>  // "<bold></bold>"

A '<' that does not form a tag is ordinary text.

# Pipeline

Tokenize splits the input into text and tag tokens inside a synthetic root
scope, BuildTree nests them into Scopes and checks the structure, and the
evaluator reduces the tree bottom-up. Two equivalent strategies exist:
StrategyStack (a single post-order walk, the default) and StrategyRescan
(repeatedly reduce the deepest, leftmost leaf scope).
*/
package markup
