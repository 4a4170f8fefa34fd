package formatter

// ScoringKeywords are the language-syntax tokens that earn a keyword-overlap
// bonus when they occur in both the query and a question. Each entry
// contributes at most once per question.
var ScoringKeywords = []string{
	"if", "else", "elif", "for", "while", "def", "class",
	"list", "dict", "set", "tuple", "string", "int", "float", "boolean",
	"true", "false", "none", "print", "return", "import", "from",
	"try", "except", "finally", "with", "as", "in", "not", "and", "or", "is",
	"lambda", "map", "filter", "reduce", "zip", "enumerate", "range",
	"len", "max", "min", "sum", "sorted", "reversed", "type", "isinstance",
	"hasattr", "getattr", "setattr", "delattr", "dir", "vars", "locals", "globals",
	"eval", "exec", "compile", "open", "read", "write", "close",
	"append", "extend", "insert", "remove", "pop", "clear", "copy", "count",
	"index", "sort", "reverse", "keys", "values", "items", "update", "get",
	"setdefault", "popitem", "fromkeys", "add", "discard",
	"union", "intersection", "difference", "symmetric_difference",
	"issubset", "issuperset", "isdisjoint",
}

// ExtractionKeywords is the vocabulary reported in FormattedQuestion.Keywords,
// in this order.
var ExtractionKeywords = []string{
	"if", "else", "elif", "for", "while", "def", "class",
	"list", "dict", "set", "tuple", "string", "int", "float", "boolean",
	"print", "return", "import", "from",
	"try", "except", "finally", "with", "as", "in", "not", "and", "or", "is",
	"lambda", "map", "filter", "reduce", "zip", "enumerate", "range",
	"len", "max", "min", "sum", "sorted", "reversed", "type", "isinstance",
	"append", "extend", "insert", "remove", "pop", "clear", "copy", "count",
	"index", "sort", "reverse", "keys", "values", "items", "update", "get",
	"setdefault", "popitem", "fromkeys", "add", "discard",
	"union", "intersection", "difference", "symmetric_difference",
	"issubset", "issuperset", "isdisjoint",
}

// Category labels
const (
	CategoryConditionals      = "conditionals"
	CategoryLoops             = "loops"
	CategoryFunctionsClasses  = "functions-and-classes"
	CategoryDataStructures    = "data-structures"
	CategoryExceptionHandling = "exception-handling"
	CategoryBasicSyntax       = "basic-syntax"
)

// Difficulty labels
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// categoryRule assigns Label when any of Terms occurs in lower-cased content
type categoryRule struct {
	Label string
	Terms []string
}

// categoryRules is a decision list: the first matching rule wins.
var categoryRules = []categoryRule{
	{Label: CategoryConditionals, Terms: []string{"if", "else", "elif"}},
	{Label: CategoryLoops, Terms: []string{"for", "while"}},
	{Label: CategoryFunctionsClasses, Terms: []string{"def", "class"}},
	{Label: CategoryDataStructures, Terms: []string{"list", "dict", "set", "tuple"}},
	{Label: CategoryExceptionHandling, Terms: []string{"try", "except"}},
}

// Question type spellings. The Chinese labels are what exported exam
// banks use.
var (
	trueFalseTypes    = map[string]bool{"true-false": true, "判断题": true}
	singleChoiceTypes = map[string]bool{"single-choice": true, "单选题": true}
)

const (
	answerPrefix     = "answer: "
	answerCorrect    = "correct"
	answerIncorrect  = "incorrect"
	optionsHeader    = "\n选项：\n"
	mediumLengthFrom = 100
	hardLengthFrom   = 200
)
