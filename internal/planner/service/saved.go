package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"studio-planner/internal/planner/repository"
)

// LastSaved renders the time since the last write, e.g. "5m ago".
func LastSaved(ctx context.Context, kv repository.Storage, now time.Time) string {
	raw, err := kv.Get(ctx, KeyLastSaved)
	if err != nil {
		return "just now"
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "just now"
	}
	return Ago(now.Sub(time.UnixMilli(millis)))
}

func Ago(d time.Duration) string {
	minutes := int(d / time.Minute)
	switch {
	case minutes < 1:
		return "just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", hours/24)
}
