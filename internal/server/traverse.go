package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/katalvlaran/lvltree/internal/ctxlog"
	"github.com/katalvlaran/lvltree/layout"
	"github.com/katalvlaran/lvltree/traverse"
	"github.com/katalvlaran/lvltree/tree"
)

// msgNotArray is returned when "nodes" is missing or not a JSON array.
const msgNotArray = "Expecting { nodes: number[] }"

// TraverseRequest is the body of POST /traverse.
type TraverseRequest struct {
	Nodes  json.RawMessage `json:"nodes"`
	Layout bool            `json:"layout,omitempty"`
}

// TraverseResponse carries every order. DFS repeats Preorder for clients
// that only know the two-field {bfs, dfs} shape.
type TraverseResponse struct {
	BFS       []float64 `json:"bfs"`
	DFS       []float64 `json:"dfs"`
	Preorder  []float64 `json:"preorder"`
	Inorder   []float64 `json:"inorder"`
	Postorder []float64 `json:"postorder"`

	Layout *LayoutResponse `json:"layout,omitempty"`
}

// LayoutResponse is the drawing data for the tree.
type LayoutResponse struct {
	Width     float64           `json:"width"`
	Height    float64           `json:"height"`
	Positions []layout.Position `json:"positions"`
	Edges     []layout.Edge     `json:"edges"`
}

func (s *Server) handleTraverse(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.FromContext(r.Context())
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)

	var req TraverseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooBig.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, msgNotArray)
		return
	}

	seq, err := decodeNodes(req.Nodes)
	if err != nil {
		logger.Debug("Rejected input.", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := tree.Build(seq, tree.WithMaxNodes(s.cfg.Limits.MaxNodes))
	switch {
	case errors.Is(err, tree.ErrTooManyNodes):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	orders := traverse.All(t)
	resp := TraverseResponse{
		BFS:       orders.LevelOrder,
		DFS:       orders.Preorder,
		Preorder:  orders.Preorder,
		Inorder:   orders.Inorder,
		Postorder: orders.Postorder,
	}
	if req.Layout {
		pos := layout.Compute(t)
		resp.Layout = &LayoutResponse{
			Width:     layout.DefaultWidth,
			Height:    layout.Height(pos, layout.DefaultLevelHeight),
			Positions: pos,
			Edges:     layout.Edges(t, pos),
		}
	}
	logger.Debug("Traversed tree.", "input", len(seq), "nodes", t.Len())

	writeJSON(w, http.StatusOK, resp)
}

// decodeNodes requires a JSON array and decodes each element as a tree.Slot.
func decodeNodes(raw json.RawMessage) ([]tree.Slot, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errors.New(msgNotArray)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, errors.New(msgNotArray)
	}
	seq := make([]tree.Slot, len(elems))
	for i, e := range elems {
		if err := seq[i].UnmarshalJSON(e); err != nil {
			return nil, fmt.Errorf("nodes[%d]: %w", i, err)
		}
	}

	return seq, nil
}
