package syntax

// Class is the closed set of syntax classes the renderer understands.
// Whatever taxonomy a grammar engine uses is normalized into one of
// these at the classifier boundary, so the color table stays a fixed,
// testable size no matter how many languages the engine knows.
type Class uint8

const (
	Text Class = iota // default / plaintext
	Keyword
	String
	Comment
	Number
	Function
	Type
	Operator
	Error

	numClasses
)

// ClassCount is the number of syntax classes, for sizing class-indexed
// tables.
const ClassCount = int(numClasses)

// String returns the class name as used in theme files.
func (c Class) String() string {
	switch c {
	case Text:
		return "text"
	case Keyword:
		return "keyword"
	case String:
		return "string"
	case Comment:
		return "comment"
	case Number:
		return "number"
	case Function:
		return "function"
	case Type:
		return "type"
	case Operator:
		return "operator"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}
