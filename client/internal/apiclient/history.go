package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/parlor-chat/parlor/shared/api"
	"github.com/parlor-chat/parlor/shared/domain"
	internal_errors "github.com/parlor-chat/parlor/shared/errors"
	"github.com/parlor-chat/parlor/shared/utils"
)

// FetchHistory fetches up to limit messages older than anchor (anchor 0
// means newest first). The response says whether the conversation's oldest
// message was reached, so callers know when to stop paginating.
func (c *APIClient) FetchHistory(ctx context.Context, anchor domain.MsgId, limit int) (api.HistoryResponse, error) {
	var history api.HistoryResponse

	c.warnIfTokenExpiring()

	path := fmt.Sprintf("/v1/messages?limit=%d", limit)
	if anchor > 0 {
		path = fmt.Sprintf("%s&before=%d", path, anchor)
	}
	resp, err := c.do(ctx, "GET", path, nil)
	if err != nil {
		return history, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return history, &internal_errors.ErrorWithStatusCode{
			Message: fmt.Sprintf("history fetch failed with status %d", resp.StatusCode), StatusCode: resp.StatusCode,
		}
	}

	if err := utils.Decode(resp.Body, &history); err != nil {
		return history, fmt.Errorf("cannot decode history response: %w", err)
	}
	return history, nil
}
