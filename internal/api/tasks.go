package api

import (
	"context"
	"net/url"

	"lifetrack/internal/models"
)

// LifeTasks lists all life tasks, newest first.
func (c *Client) LifeTasks(ctx context.Context) ([]models.LifeTask, error) {
	var tasks []models.LifeTask
	if err := c.do(ctx, "GET", "/life-tasks", nil, &tasks); err != nil {
		return nil, wrapErr("list life tasks", err)
	}
	return tasks, nil
}

// CreateLifeTask creates a new task. Identity comes from the server, so
// re-creating a task with a previously used name yields a distinct id.
func (c *Client) CreateLifeTask(ctx context.Context, in models.LifeTaskInput) (models.LifeTask, error) {
	var task models.LifeTask
	if err := c.do(ctx, "POST", "/life-tasks", in, &task); err != nil {
		return models.LifeTask{}, wrapErr("create life task", err)
	}
	return task, nil
}

// UpdateLifeTask updates an existing task's definition.
func (c *Client) UpdateLifeTask(ctx context.Context, id string, in models.LifeTaskInput) (models.LifeTask, error) {
	var task models.LifeTask
	if err := c.do(ctx, "PUT", "/life-tasks/"+url.PathEscape(id), in, &task); err != nil {
		return models.LifeTask{}, wrapErr("update life task", err)
	}
	return task, nil
}

// DeleteLifeTask removes a task. The server cascade-deletes its progress
// entries.
func (c *Client) DeleteLifeTask(ctx context.Context, id string) error {
	return wrapErr("delete life task", c.do(ctx, "DELETE", "/life-tasks/"+url.PathEscape(id), nil, nil))
}
