package mcp

import "github.com/mark3labs/mcp-go/mcp"

// renderChartTool defines the render_chart MCP tool.
var renderChartTool = mcp.NewTool("render_chart",
	mcp.WithDescription("Render a line chart as PNG. Without samples it returns the current live chart of the given kind; with samples it draws them into a fresh chart using the kind's color and label."),
	mcp.WithString("kind",
		mcp.Required(),
		mcp.Description("Measurement kind whose chart, color and label to use"),
		mcp.Enum("temperature", "salinity", "ph", "oxygen"),
	),
	mcp.WithArray("samples",
		mcp.Description("Optional series of finite numbers to plot, oldest first"),
		mcp.WithNumberItems(),
	),
	mcp.WithString("color",
		mcp.Description("Optional #rrggbb line color overriding the kind's color"),
	),
	mcp.WithNumber("width",
		mcp.Description("Chart width in pixels when samples are given (default 600)"),
	),
	mcp.WithNumber("height",
		mcp.Description("Chart height in pixels when samples are given (default 300)"),
	),
)

// getReadingsTool defines the get_readings MCP tool.
var getReadingsTool = mcp.NewTool("get_readings",
	mcp.WithDescription("Get the current simulated ocean readings and the sliding window behind every chart."),
)

// listFactsTool defines the list_facts MCP tool.
var listFactsTool = mcp.NewTool("list_facts",
	mcp.WithDescription("List the ocean facts and gallery slides shown on the site."),
	mcp.WithString("source",
		mcp.Description("Restrict to one table"),
		mcp.Enum("fact", "gallery"),
	),
)

// searchFactsTool defines the search_facts MCP tool.
var searchFactsTool = mcp.NewTool("search_facts",
	mcp.WithDescription("Search the ocean facts and gallery slides semantically."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language search query"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 5)"),
	),
	mcp.WithString("source",
		mcp.Description("Restrict results to one table"),
		mcp.Enum("fact", "gallery"),
	),
)

// chatTool defines the chat MCP tool.
var chatTool = mcp.NewTool("chat",
	mcp.WithDescription("Send a message to the scripted chat demo and get its reply."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("Message text"),
	),
)
