// Package assistant talks to the external text-generation service behind the
// in-app chat. It only ever reads alarm and stats state; on any failure the
// conversation gets a single static apology instead of an error.
package assistant

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/wakeup/pkg/entity"
)

// FallbackMessage is returned whenever the external service can't answer.
const FallbackMessage = "I'm having trouble connecting to my brain right now. Please check your connection and try again."

const systemInstruction = `You are the Wake Up Assistant for a task-based alarm enforcer app. You have direct access to the user's current alarm settings and statistics to provide personalized help.

%s

YOUR PERSONALITY:
- Firm but encouraging. You want the user to succeed and beat laziness.
- Knowledgeable about sleep hygiene and the app's strict protocols.
- Concise and mobile-friendly.

DO NOT hallucinate alarms that aren't in the provided list. If a user asks to change an alarm, explain that you can't do it directly and they should edit it from the home screen.`

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Client struct {
	http     *http.Client
	endpoint string
	apiKey   string
	model    string
	logger   *slog.Logger
}

func New(endpoint, apiKey, model string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:     &http.Client{Timeout: timeout},
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		logger:   logger,
	}
}

type generateRequest struct {
	Model    string    `json:"model"`
	System   string    `json:"system"`
	Messages []Message `json:"messages"`
}

type generateResponse struct {
	Reply string `json:"reply"`
}

// Reply sends the conversation plus a read-only state snapshot to the
// external service and returns its answer, or the fallback message on any
// transport, status or decoding failure.
func (c *Client) Reply(ctx context.Context, alarms []*entity.Alarm, stats *entity.UserStats, history []Message, userMessage string) string {
	if c.endpoint == "" {
		return FallbackMessage
	}
	req := generateRequest{
		Model:    c.model,
		System:   fmt.Sprintf(systemInstruction, Snapshot(alarms, stats)),
		Messages: append(append([]Message{}, history...), Message{Role: "user", Content: userMessage}),
	}
	body, err := sonic.Marshal(req)
	if err != nil {
		c.logger.Error("marshalling assistant request failed", slog.String("error", err.Error()))
		return FallbackMessage
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return FallbackMessage
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Warn("assistant request failed", slog.String("error", err.Error()))
		return FallbackMessage
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("assistant returned bad status", slog.Int("status", resp.StatusCode))
		return FallbackMessage
	}
	var out generateResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&out); err != nil || out.Reply == "" {
		return FallbackMessage
	}
	return out.Reply
}

// Snapshot renders the read-only textual view of alarms and stats the
// assistant is allowed to see.
func Snapshot(alarms []*entity.Alarm, stats *entity.UserStats) string {
	var sb strings.Builder
	if len(alarms) == 0 {
		sb.WriteString("The user currently has NO alarms set.")
	} else {
		sb.WriteString("USER ALARM DATA:\n")
		for i, a := range alarms {
			state := "INACTIVE"
			if a.Active {
				state = "ACTIVE"
			}
			fmt.Fprintf(&sb, "%d. [%s] %s %s - Label: %q, Task: %s (%s), Recurrence: %s\n",
				i+1, state, a.Time, a.Period, a.Label, a.Task, a.Difficulty, recurrencePhrase(a))
		}
	}
	if stats != nil {
		fmt.Fprintf(&sb, "\nUSER STATS:\n- Current Streak: %d days\n- Best Streak: %d days\n- Total Successful Wakes: %d",
			stats.CurrentStreak, stats.BestStreak, stats.TotalWakes)
	}
	return sb.String()
}

func recurrencePhrase(a *entity.Alarm) string {
	if a.Date != "" {
		return "on specific date " + a.Date
	}
	if len(a.Days) == 0 || len(a.Days) == 7 {
		return "every day"
	}
	parts := make([]string, len(a.Days))
	for i, d := range a.Days {
		parts[i] = fmt.Sprint(d)
	}
	return "on days indices " + strings.Join(parts, ",")
}
