package impl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntentRules_Ordering(t *testing.T) {
	want := []string{"food", "transport", "places", "services", "salons", "greeting"}

	require.Len(t, intentRules, len(want))
	for i, rule := range intentRules {
		assert.Equal(t, want[i], rule.Name)
	}
}

func TestCannedReply_FirstMatchWins(t *testing.T) {
	// "food" is tested before "auto" and before "hello", so mixed messages
	// resolve to the earlier branch.
	foodReply := intentRules[0].Reply

	assert.Equal(t, foodReply, cannedReply("food and auto"))
	assert.Equal(t, foodReply, cannedReply("hello, where can I get food?"))
}

func TestCannedReply_Branches(t *testing.T) {
	tests := []struct {
		name    string
		message string
		rule    string
	}{
		{name: "food keyword", message: "Where can I eat?", rule: "food"},
		{name: "transport keyword", message: "any auto to burla?", rule: "transport"},
		{name: "places keyword", message: "what should I visit", rule: "places"},
		{name: "services keyword", message: "need a xerox shop", rule: "services"},
		{name: "salon keyword", message: "cheap haircut nearby?", rule: "salons"},
		{name: "greeting", message: "hello", rule: "greeting"},
		{name: "case insensitive", message: "FOOD PLEASE", rule: "food"},
		{name: "substring not word boundary", message: "seafood options", rule: "food"},
	}

	byName := make(map[string]string, len(intentRules))
	for _, rule := range intentRules {
		byName[rule.Name] = rule.Reply
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, byName[tt.rule], cannedReply(tt.message))
		})
	}
}

func TestCannedReply_Fallback(t *testing.T) {
	reply := cannedReply("xyzzy")

	assert.Equal(t, fallbackReply, reply)
	assert.True(t, strings.Contains(reply, "I can help you"))
}
