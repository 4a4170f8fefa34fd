// Package mcp implements the Model Context Protocol (MCP) server for quiz
// question search.
//
// The server exposes these tools over stdio:
//   - search_questions: Rank the corpus against a free-text query
//   - list_questions: List formatted questions, optionally filtered
//   - question_stats: Count questions by type, category and difficulty
//   - reload_corpus: Reload the corpus from its configured source
//   - import_questions: Import question files into the database
//   - get_status: Report the loaded corpus and database state
//
// # Tool: search_questions
//
//	Request:
//	{
//	  "name": "search_questions",
//	  "arguments": {"query": "python list"}
//	}
//
//	Response:
//	{
//	  "results": [
//	    {
//	      "id": "判断题_1",
//	      "title": "判断题 1",
//	      "answer": "answer: correct",
//	      "category": "data-structures",
//	      "score": 14.2,
//	      "original_score": 13
//	    }
//	  ],
//	  "count": 1,
//	  "fallback": false,
//	  "status": "success"
//	}
//
// At most five results are returned. When nothing matches, the single
// best-scoring question is returned with is_fallback set and the top-level
// fallback flag true.
//
// # Corpus Sources
//
// QUIZSEARCH_CORPUS_SOURCE selects where the corpus comes from:
//
//	file    database.json, then data/questions.json (default)
//	sqlite  the questions table written by import_questions
//
// A missing or unreadable source never fails startup; a one-question
// placeholder corpus is served instead.
//
// # MCP Client Configuration
//
//	{
//	  "mcpServers": {
//	    "quizsearch": {
//	      "command": "/usr/local/bin/quizsearch",
//	      "env": {
//	        "QUIZSEARCH_QUESTIONS_PATH": "/data/database.json"
//	      }
//	    }
//	  }
//	}
//
// # Error Handling
//
// Errors are returned as *MCPError values carrying a JSON-RPC code:
//   - -32602: Invalid params (missing/invalid arguments)
//   - -32603: Internal error (database, filesystem, etc.)
//   - -32002: Import in progress
//   - -32004: Empty query
//   - -32005: Reload in progress
//   - -32006: None of the import files could be read
//
// # Logging
//
// The server logs to stderr; stdout is reserved for the MCP protocol.
package mcp
