package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/peterkuimelis/tcgsim/internal/catalog"
)

var errNoGame = errors.New("no game is running, use new_game first")

const inputHelp = "Input names: left, right, 1-6 (slot), hand, discard, stadium, lost-zone, prizes, deck, top, bottom, " +
	"select, cancel, flip, increment, decrement, switch-sides, move, swap, append, prepend, observe, shuffle, roll."

// RegisterTools adds all table tools to the MCP server.
func RegisterTools(s *server.MCPServer, sess *Session) {
	s.AddTool(newGameTool(), sess.handleNewGame)
	s.AddTool(pressTool(), sess.handlePress)
	s.AddTool(getStateTool(), sess.handleGetState)
	s.AddTool(listDecksTool(), sess.handleListDecks)
}

// --- Tool definitions ---

func newGameTool() mcp.Tool {
	return mcp.NewTool("new_game",
		mcp.WithDescription("Open a new hot-seat table with two 60-card decks. Replaces any running game. "+
			"Decks are referenced by number or name from the decks file, or by a path to a .txt deck list."),
		mcp.WithString("deck1", mcp.Description("Player 1's deck (default from configuration)")),
		mcp.WithString("deck2", mcp.Description("Player 2's deck (default from configuration)")),
		mcp.WithNumber("seed", mcp.Description("Random seed for shuffles and dice; 0 or absent picks one")),
		mcp.WithBoolean("no_setup", mcp.Description("Skip the opening shuffle and prize deal")),
	)
}

func pressTool() mcp.Tool {
	return mcp.NewTool("press",
		mcp.WithDescription("Feed one or more inputs to the table, in order. Stops at the first rejected input "+
			"and reports how many were applied. "+inputHelp),
		mcp.WithString("inputs", mcp.Required(), mcp.Description("Space-separated input names, e.g. 'deck deck cancel hand move discard'")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current table and the events since the last report, without changing anything. Read-only."),
	)
}

func listDecksTool() mcp.Tool {
	return mcp.NewTool("list_decks",
		mcp.WithDescription("List the decks in the configured decks file."),
	)
}

// --- Tool handlers ---

func (s *Session) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gs := s.settings
	if d := request.GetString("deck1", ""); d != "" {
		gs.Deck1 = d
	}
	if d := request.GetString("deck2", ""); d != "" {
		gs.Deck2 = d
	}
	if seed := request.GetInt("seed", 0); seed != 0 {
		gs.Seed = int64(seed)
	}

	resp, err := s.start(gs, request.GetBool("no_setup", false))
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (s *Session) handlePress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := strings.Fields(request.GetString("inputs", ""))
	if len(names) == 0 {
		return mcp.NewToolResultError("inputs must name at least one input. " + inputHelp), nil
	}

	resp, err := s.press(names)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (s *Session) handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := s.snapshot()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

type deckSummary struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Size   int    `json:"size"`
}

func (s *Session) handleListDecks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.settings.DecksFile == "" {
		return mcp.NewToolResultError("No decks file is configured."), nil
	}
	df, err := catalog.ParseDeckFile(s.settings.DecksFile)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to read decks: %v", err), nil
	}
	decks := make([]deckSummary, len(df.Decks))
	for i, d := range df.Decks {
		decks[i] = deckSummary{Number: i + 1, Name: d.Name, Size: d.Size()}
	}
	return mcp.NewToolResultText(respondJSON(decks)), nil
}
