// Package chat implements the scripted assistant of the chat demo and the
// transcript store behind it.
package chat

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
)

// Responses are the canned assistant replies.
var Responses = []string{
	"I'll help you analyze that oceanographic data. Let me fetch the latest ARGO float measurements.",
	"Interesting query! Based on the current data, I can show you temperature and salinity profiles for that region.",
	"Great question! The latest satellite data shows some fascinating patterns in that area.",
	"Let me process that request and generate a comprehensive visualization for you.",
	"I found several relevant datasets that match your criteria. Here's what the data shows...",
}

// Example is a query card that fills the chat input when clicked.
type Example struct {
	Icon  string `json:"icon"`
	Query string `json:"query"`
}

// Examples are the query cards shown next to the chat demo.
var Examples = []Example{
	{Icon: "fa-temperature-high", Query: "Show me temperature trends in the North Atlantic over the last decade"},
	{Icon: "fa-water", Query: "Compare salinity profiles between the Pacific and Indian Oceans"},
	{Icon: "fa-map-marked-alt", Query: "Where are the active ARGO floats near the equator?"},
	{Icon: "fa-chart-line", Query: "Plot dissolved oxygen levels against depth for the Arabian Sea"},
}

// Answerer produces the assistant's side of the conversation.
type Answerer interface {
	Answer(ctx context.Context, question string) string
}

// Responder picks replies for the chat demo.
type Responder struct {
	mu        sync.Mutex
	rng       *rand.Rand
	responses []string
}

// NewResponder creates a responder drawing from src over the default
// replies.
func NewResponder(src rand.Source) *Responder {
	return &Responder{rng: rand.New(src), responses: Responses}
}

// Reply returns a uniformly random canned response.
func (r *Responder) Reply() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.responses[r.rng.IntN(len(r.responses))]
}

// Answer ignores the question and returns a canned response.
func (r *Responder) Answer(ctx context.Context, question string) string {
	return r.Reply()
}

// Normalize trims a submitted message. ok is false for blank input,
// which the demo ignores.
func Normalize(content string) (string, bool) {
	content = strings.TrimSpace(content)
	return content, content != ""
}
