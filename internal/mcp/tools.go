package mcp

import "github.com/mark3labs/mcp-go/mcp"

var languageParam = mcp.WithString("language",
	mcp.Description("Response language code (default from config)"),
	mcp.Enum("en", "hi", "mr", "es", "fr", "de"),
)

// askDocumentsTool defines the ask_documents MCP tool.
var askDocumentsTool = mcp.NewTool("ask_documents",
	mcp.WithDescription("Ask a question about the uploaded course documents. Returns the answer, a confidence score and numbered sources."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("Natural language question"),
	),
	languageParam,
	mcp.WithNumber("top_k",
		mcp.Description("Number of document chunks to retrieve (default 5)"),
	),
)

// uploadDocumentTool defines the upload_document MCP tool.
var uploadDocumentTool = mcp.NewTool("upload_document",
	mcp.WithDescription("Upload a local PDF, DOCX or PPTX file for indexing. New documents wait for governance approval."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Path of the file on this machine"),
	),
)

// getAnalyticsTool defines the get_analytics MCP tool.
var getAnalyticsTool = mcp.NewTool("get_analytics",
	mcp.WithDescription("Get previous-year-question analytics: totals, topics, year range and key patterns."),
	languageParam,
)

// getKnowledgeGraphTool defines the get_knowledge_graph MCP tool.
var getKnowledgeGraphTool = mcp.NewTool("get_knowledge_graph",
	mcp.WithDescription("Get the concept knowledge graph as source → relationship → target lines with statistics."),
	languageParam,
)

// getGovernanceTool defines the get_governance MCP tool.
var getGovernanceTool = mcp.NewTool("get_governance",
	mcp.WithDescription("Get governance statistics and the documents waiting for approval."),
	languageParam,
)

// reviewDocumentTool defines the review_document MCP tool.
var reviewDocumentTool = mcp.NewTool("review_document",
	mcp.WithDescription("Approve or reject a pending document."),
	mcp.WithString("document_id",
		mcp.Required(),
		mcp.Description("ID of the pending document"),
	),
	mcp.WithString("action",
		mcp.Required(),
		mcp.Description("Review decision"),
		mcp.Enum("approve", "reject"),
	),
	mcp.WithString("reason",
		mcp.Description("Rejection reason (default \"Not suitable\")"),
	),
)

// getHealthTool defines the get_health MCP tool.
var getHealthTool = mcp.NewTool("get_health",
	mcp.WithDescription("Check whether the backend, its LLM and its vector store are reachable."),
)
