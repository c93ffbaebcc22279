package api

import (
	"context"
	"net/url"

	"lifetrack/internal/models"
)

// ProgressHistory fetches the full progress history for one task, newest
// first.
func (c *Client) ProgressHistory(ctx context.Context, taskID string) ([]models.ProgressEntry, error) {
	var entries []models.ProgressEntry
	if err := c.do(ctx, "GET", "/progress-entries/"+url.PathEscape(taskID), nil, &entries); err != nil {
		return nil, wrapErr("progress history", err)
	}
	return entries, nil
}

// SaveProgress upserts the progress value for a (task, date) pair.
func (c *Client) SaveProgress(ctx context.Context, taskID, date string, value int) (models.ProgressEntry, error) {
	in := models.ProgressInput{TaskID: taskID, Date: date, ProgressValue: value}
	var entry models.ProgressEntry
	if err := c.do(ctx, "POST", "/progress-entries", in, &entry); err != nil {
		return models.ProgressEntry{}, wrapErr("save progress", err)
	}
	return entry, nil
}
