// Package formatter turns raw question records into presentation-ready
// questions.
//
// Format derives every display field from the record alone:
//
//	title      "{question_type} {question_number}"
//	content    question text, then "\n选项：\n" and one option per line
//	answer     "answer: correct" / "answer: B - for" / "answer: <raw>"
//	category   first matching rule of a fixed decision list
//	difficulty true/false is easy; otherwise by content length
//	keywords   ExtractionKeywords found in the content
//
// The keyword vocabularies live here as package-level slices so that the
// searcher scores against exactly the same tokens.
package formatter
