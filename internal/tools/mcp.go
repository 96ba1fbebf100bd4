// Package tools exposes simplification, translation and grading as MCP tools.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/SuyashSrivastava1/ReadAble/internal/ingestion"
	"github.com/SuyashSrivastava1/ReadAble/internal/profiles"
	"github.com/SuyashSrivastava1/ReadAble/internal/readability"
	"github.com/SuyashSrivastava1/ReadAble/internal/simplify"
	"github.com/SuyashSrivastava1/ReadAble/internal/types"
	"github.com/SuyashSrivastava1/ReadAble/internal/validation"
)

// ProfilesURI is the resource holding the reading profile catalog.
const ProfilesURI = "readable://profiles"

// Deps holds dependencies for the MCP server.
type Deps struct {
	Service        *simplify.Service
	DefaultProfile string
	Version        string
}

// NewMCPServer creates an MCP server with the ReadAble tools and resources registered.
func NewMCPServer(deps Deps) *server.MCPServer {
	version := deps.Version
	if version == "" {
		version = "dev"
	}

	s := server.NewMCPServer(
		"readable",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("ReadAble rewrites text for a reading profile, translates it and grades its readability."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("simplify_text",
			mcp.WithDescription("Rewrite text so it is easier to read for the given reading profile."),
			mcp.WithString("text", mcp.Description("Text to simplify, at most 5000 characters"), mcp.Required()),
			mcp.WithString("profile", mcp.Description("Reading profile id"), mcp.Enum(profiles.IDs()...)),
		),
		simplifyText(deps),
	)

	s.AddTool(
		mcp.NewTool("translate_text",
			mcp.WithDescription("Translate text into english, spanish, hindi or french."),
			mcp.WithString("text", mcp.Description("Text to translate"), mcp.Required()),
			mcp.WithString("language", mcp.Description("Target language"), mcp.Required(),
				mcp.Enum("english", "spanish", "hindi", "french")),
		),
		translateText(deps),
	)

	s.AddTool(
		mcp.NewTool("grade_text",
			mcp.WithDescription("Estimate the reading grade of text without changing it."),
			mcp.WithString("text", mcp.Description("Text to grade"), mcp.Required()),
		),
		gradeText(),
	)

	s.AddResource(
		mcp.NewResource(
			ProfilesURI,
			"Reading Profiles",
			mcp.WithResourceDescription("The reading profile catalog as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		profilesResource(),
	)

	return s
}

func simplifyText(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := req.RequireString("text")
		if err != nil {
			return mcpError("text is required"), nil
		}

		body := types.SimplifyRequest{Text: text, ReadingProfile: req.GetString("profile", deps.DefaultProfile)}
		if stripped, err := ingestion.StripMarkup(body.Text); err == nil {
			body.Text = stripped
		}
		body.Normalize()
		if err := body.Validate(); err != nil {
			return mcpError(types.ValidationMessage(err)), nil
		}

		profile := body.Profile()
		result := deps.Service.Simplify(ctx, body.Text, profile)
		return mcpJSON(simplify.Respond(body.Text, profile, result))
	}
}

func translateText(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := req.RequireString("text")
		if err != nil {
			return mcpError("text is required"), nil
		}
		language, err := req.RequireString("language")
		if err != nil {
			return mcpError("language is required"), nil
		}

		body := types.TranslateRequest{Text: text, TargetLanguage: language}
		body.Normalize()
		if err := body.Validate(); err != nil {
			return mcpError(types.ValidationMessage(err)), nil
		}

		return mcpText(deps.Service.Translate(ctx, body.Text, body.TargetLanguage)), nil
	}
}

func gradeText() server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := req.RequireString("text")
		if err != nil || strings.TrimSpace(text) == "" {
			return mcpError("text is required"), nil
		}
		return mcpJSON(Grade(text, "mcp"))
	}
}

func profilesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(profiles.All())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profiles: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

// Grade builds a readability report for text.
func Grade(text, source string) *types.GradeReport {
	text = ingestion.NormalizeWhitespace(text)
	meta := ingestion.NewMetadata(text, source)
	grade := readability.EstimateGrade(text)
	return &types.GradeReport{
		Source:                  source,
		Grade:                   grade,
		Level:                   readability.FormatLevel(grade),
		Words:                   meta.Words,
		Sentences:               meta.Sentences,
		Paragraphs:              meta.Paragraphs,
		AverageWordsPerSentence: validation.AverageWordsPerSentence(text),
	}
}

func mcpJSON(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcpError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcpText(string(b)), nil
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
