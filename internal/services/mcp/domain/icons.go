package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/icons"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/logging"
	platformotel "github.com/sunit1986/JioBharatIQ-Server/internal/platform/otel"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/svg"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/theme"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/sunit1986/JioBharatIQ-Server/internal/services/mcp/domain"

// IconURIScheme is the scheme of icon resources, e.g. icon://ic_add.
const IconURIScheme = "icon"

// SVGMIMEType is the media type of rendered icons.
const SVGMIMEType = svg.MIMEType

// RenderIconInput represents the MCP tool input for rendering an icon.
type RenderIconInput struct {
	Name  string `json:"name" jsonschema:"icon name in any case or delimiter style, e.g. ic_arrow_back"`
	Color string `json:"color,omitempty" jsonschema:"color token such as primary-50 or a hex literal"`
	Size  string `json:"size,omitempty" jsonschema:"size token such as medium or a pixel count"`
	Style string `json:"style,omitempty" jsonschema:"extra inline CSS declarations applied last"`
}

// RenderIconResult represents the MCP tool output for rendering an icon.
type RenderIconResult struct {
	Key   string `json:"key" jsonschema:"canonical icon key the name normalized to"`
	Found bool   `json:"found" jsonschema:"whether the icon exists in the catalog"`
	SVG   string `json:"svg" jsonschema:"rendered SVG markup, empty when not found"`
}

// RenderIconTool defines the MCP tool schema for rendering an icon.
func RenderIconTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "render_icon",
		Description: "Renders a catalog icon as styled SVG markup. Unknown names render nothing.",
	}
}

// RenderIconHandler executes a render request against resolver.
func RenderIconHandler(resolver *icons.Resolver, log *logging.Logger) mcp.ToolHandlerFor[RenderIconInput, RenderIconResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RenderIconInput) (*mcp.CallToolResult, RenderIconResult, error) {
		_, span := startSpan(ctx, "render_icon", attribute.String("icon.name", input.Name))
		defer span.End()

		if resolver == nil {
			return nil, RenderIconResult{}, fmt.Errorf("icon resolver is not configured")
		}
		result := resolver.Resolve(input.Name, theme.NewProps(input.Color, input.Size, input.Style))
		key := result.Key()
		if !result.Found() {
			key = resolver.Normalize(input.Name)
		}
		span.SetAttributes(attribute.String("icon.key", string(key)), attribute.Bool("icon.found", result.Found()))
		log.WithFields(map[string]any{"icon": string(key), "found": result.Found()}).Debug("render_icon")

		return nil, RenderIconResult{
			Key:   string(key),
			Found: result.Found(),
			SVG:   result.String(),
		}, nil
	}
}

// FindIconInput represents the MCP tool input for searching icons.
type FindIconInput struct {
	Query string `json:"query" jsonschema:"text matched against icon names and keywords"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum results, 1 to 50, default 10"`
}

// FindIconTool defines the MCP tool schema for searching icons.
func FindIconTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "find_icon",
		Description: "Searches the icon catalog by name and keyword",
	}
}

// FindIconHandler executes a search over defs.
func FindIconHandler(defs []icons.Definition) mcp.ToolHandlerFor[FindIconInput, icons.SearchResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FindIconInput) (*mcp.CallToolResult, icons.SearchResult, error) {
		_, span := startSpan(ctx, "find_icon", attribute.String("icon.query", input.Query))
		defer span.End()

		result, err := icons.Find(defs, input.Query, input.Limit)
		if err != nil {
			span.RecordError(err)
			return nil, icons.SearchResult{}, err
		}
		span.SetAttributes(attribute.Int("icon.matches", len(result.Matches)))
		return nil, result, nil
	}
}

// ListIconsInput represents the MCP tool input for listing icons.
type ListIconsInput struct {
	Category string `json:"category,omitempty" jsonschema:"only list icons in this category"`
}

// ListIconsResult represents the MCP tool output for listing icons.
type ListIconsResult struct {
	Keys       []string `json:"keys" jsonschema:"canonical icon keys in sorted order"`
	Categories []string `json:"categories" jsonschema:"all catalog categories"`
}

// ListIconsTool defines the MCP tool schema for listing icons.
func ListIconsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_icons",
		Description: "Lists catalog icon keys, optionally filtered by category",
	}
}

// ListIconsHandler lists the keys of defs.
func ListIconsHandler(defs []icons.Definition) mcp.ToolHandlerFor[ListIconsInput, ListIconsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListIconsInput) (*mcp.CallToolResult, ListIconsResult, error) {
		_, span := startSpan(ctx, "list_icons", attribute.String("icon.category", input.Category))
		defer span.End()

		return nil, ListIconsResult{
			Keys:       ListKeys(defs, input.Category),
			Categories: append([]string{}, icons.Categories(defs)...),
		}, nil
	}
}

// ListKeys returns the sorted distinct keys of defs in category.
func ListKeys(defs []icons.Definition, category string) []string {
	keys := icons.KeysIn(defs, category)
	result := make([]string, 0, len(keys))
	for _, key := range keys {
		result = append(result, string(key))
	}
	return result
}

// IconResourceTemplate defines the readable icon resource.
func IconResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "icon",
		Title:       "Icon",
		Description: "Rendered SVG for one catalog icon. URI format: icon://{name}",
		MIMEType:    SVGMIMEType,
		URITemplate: IconURIScheme + "://{name}",
	}
}

// IconResourceHandler returns a readable icon resource. Query parameters
// color, size and style are applied as props.
func IconResourceHandler(resolver *icons.Resolver) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if resolver == nil {
			return nil, fmt.Errorf("icon resolver is not configured")
		}
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("icon name is required; use URI format icon://{name}")
		}
		uri := req.Params.URI

		_, span := startSpan(ctx, "read_icon_resource", attribute.String("icon.uri", uri))
		defer span.End()

		name, props, err := ParseIconURI(uri)
		if err != nil {
			return nil, err
		}
		result := resolver.Resolve(name, props)
		if !result.Found() {
			return nil, mcp.ResourceNotFoundError(uri)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: SVGMIMEType,
					Text:     result.String(),
				},
			},
		}, nil
	}
}

// ParseIconURI extracts the icon name and style props from an icon:// URI.
// The name is everything between the scheme and the query, unescaped, so
// any spelling the resolver accepts works, including "icon://ic add".
func ParseIconURI(uri string) (string, theme.Props, error) {
	prefix := IconURIScheme + "://"
	if len(uri) < len(prefix) || !strings.EqualFold(uri[:len(prefix)], prefix) {
		return "", nil, fmt.Errorf("icon uri must use the %s:// scheme, got %q", IconURIScheme, uri)
	}
	rest, _, _ := strings.Cut(uri[len(prefix):], "#")
	rawName, rawQuery, _ := strings.Cut(rest, "?")

	name, err := url.PathUnescape(rawName)
	if err != nil {
		return "", nil, fmt.Errorf("parse icon uri: %w", err)
	}
	name = strings.TrimSpace(strings.Trim(name, "/"))
	if name == "" {
		return "", nil, fmt.Errorf("icon name is required; use URI format icon://{name}")
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", nil, fmt.Errorf("parse icon uri query: %w", err)
	}
	return name, theme.NewProps(query.Get(theme.PropColor), query.Get(theme.PropSize), query.Get(theme.PropStyle)), nil
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return platformotel.Tracer(tracerName).Start(ctx, "mcp."+name, trace.WithAttributes(attrs...))
}
