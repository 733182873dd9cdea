package telegram

import (
	"context"
	"log"
	"time"
)

// Poll long-polls getUpdates and invokes handler for each update until the
// context is cancelled. Handler errors are the handler's problem; this loop
// only tracks the offset.
func (c *Client) Poll(ctx context.Context, timeoutSeconds int, handler func(Update)) error {
	var offset int64

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		updates, err := c.GetUpdates(ctx, offset, timeoutSeconds)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Printf("[Telegram] poll error: %v", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(2 * time.Second):
			}
			continue
		}

		for _, upd := range updates {
			if upd.UpdateID >= offset {
				offset = upd.UpdateID + 1
			}
			handler(upd)
		}
	}
}
