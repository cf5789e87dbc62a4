// Package prompt builds the completion request text. Construction is pure
// string formatting with no failure mode.
package prompt

import "fmt"

// systemMessage is the fixed system-role instruction sent with every request.
const systemMessage = "You are a UI/UX expert who creates clean, simplified interfaces. " +
	"You always respond with complete, valid HTML documents that are self-contained and functional."

// userTemplate frames the (possibly truncated) document and the caller's
// intent with the fixed simplification instructions.
const userTemplate = `You are a UI/UX expert tasked with simplifying a complex HTML interface to help users accomplish a specific goal.

Original HTML:
%s

User Intent: %s

Please create a simplified HTML interface that:
1. Focuses only on elements needed to accomplish the user's intent
2. Removes unnecessary clutter, navigation, and irrelevant content
3. Maintains a clean, minimal design
4. Ensures the simplified interface is fully functional
5. Uses modern, accessible HTML5 and CSS
6. Includes inline CSS for styling to make it self-contained

Return only the complete HTML document, starting with <!DOCTYPE html> and including all necessary CSS inline.
Make the interface clean, modern, and focused on the user's goal.`

// System returns the fixed system-role message.
func System() string { return systemMessage }

// Build produces the deterministic user-role message for the given document
// text and intent.
func Build(doc, intent string) string {
	return fmt.Sprintf(userTemplate, doc, intent)
}
