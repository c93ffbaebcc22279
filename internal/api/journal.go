package api

import (
	"context"
	"net/url"

	"lifetrack/internal/models"
)

// JournalEntries lists all journal entries, newest first.
func (c *Client) JournalEntries(ctx context.Context) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := c.do(ctx, "GET", "/journal-entries", nil, &entries); err != nil {
		return nil, wrapErr("list journal entries", err)
	}
	return entries, nil
}

// JournalEntryByDate fetches the entry for one ISO date. A date with no
// entry returns ErrNotFound.
func (c *Client) JournalEntryByDate(ctx context.Context, date string) (models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := c.do(ctx, "GET", "/journal-entries/"+url.PathEscape(date), nil, &entry); err != nil {
		return models.JournalEntry{}, wrapErr("get journal entry", err)
	}
	return entry, nil
}

// CreateJournalEntry creates the entry for a date that has none yet.
func (c *Client) CreateJournalEntry(ctx context.Context, date, content string) (models.JournalEntry, error) {
	body := struct {
		Date    string `json:"date"`
		Content string `json:"content"`
	}{Date: date, Content: content}
	var entry models.JournalEntry
	if err := c.do(ctx, "POST", "/journal-entries", body, &entry); err != nil {
		return models.JournalEntry{}, wrapErr("create journal entry", err)
	}
	return entry, nil
}

// UpdateJournalEntry replaces the content of an existing entry.
func (c *Client) UpdateJournalEntry(ctx context.Context, date, content string) (models.JournalEntry, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: content}
	var entry models.JournalEntry
	if err := c.do(ctx, "PUT", "/journal-entries/"+url.PathEscape(date), body, &entry); err != nil {
		return models.JournalEntry{}, wrapErr("update journal entry", err)
	}
	return entry, nil
}

// DeleteJournalEntry removes the entry for a date.
func (c *Client) DeleteJournalEntry(ctx context.Context, date string) error {
	return wrapErr("delete journal entry", c.do(ctx, "DELETE", "/journal-entries/"+url.PathEscape(date), nil, nil))
}
