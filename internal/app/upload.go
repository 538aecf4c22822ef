package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/campusnexus/nexus/internal/i18n"
	"github.com/campusnexus/nexus/internal/view"
)

// HandleFiles uploads files one after another. Each gets its own item with
// simulated progress that stops when its request settles. The returned items
// are the final state of each upload.
func (c *Coordinator) HandleFiles(ctx context.Context, files []File) []view.UploadItem {
	t := c.Table()
	results := make([]view.UploadItem, 0, len(files))

	for _, f := range files {
		item := view.NewUploadItem(f.Name, f.Size, t)

		c.mu.Lock()
		c.uploads = append(c.uploads, item)
		snap := *item
		c.mu.Unlock()
		c.surface.AddUpload(snap)

		results = append(results, c.uploadOne(ctx, f, item, t))
	}
	return results
}

func (c *Coordinator) uploadOne(ctx context.Context, f File, item *view.UploadItem, t i18n.Table) view.UploadItem {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.simulateProgress(item, stop)
	}()

	err := c.sendFile(ctx, f, item, t)
	close(stop)
	wg.Wait()

	c.mu.Lock()
	if err != nil {
		item.Fail(err, t)
	}
	snap := *item
	c.mu.Unlock()

	if err != nil {
		c.logger.Error("upload failed", zap.String("file", f.Name), zap.Error(err))
	} else {
		c.logger.Info("upload complete", zap.String("file", f.Name), zap.Int("chunks", snap.Chunks))
	}
	c.surface.UpdateUpload(snap)
	return snap
}

func (c *Coordinator) sendFile(ctx context.Context, f File, item *view.UploadItem, t i18n.Table) error {
	if f.Open == nil {
		return fmt.Errorf("opening %s: no content", f.Name)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening %s: %w", f.Name, err)
	}
	defer rc.Close()

	resp, err := c.backend.Upload(ctx, f.Name, rc)
	if err != nil {
		return err
	}

	c.mu.Lock()
	item.Succeed(resp, t)
	c.mu.Unlock()
	return nil
}

// simulateProgress advances item on every tick until stop is closed. The
// progress is cosmetic and unrelated to bytes sent.
func (c *Coordinator) simulateProgress(item *view.UploadItem, stop <-chan struct{}) {
	ticker := time.NewTicker(c.opts.UploadTick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			changed := item.Advance(c.opts.UploadStep, c.opts.UploadCap)
			snap := *item
			c.mu.Unlock()
			if changed {
				c.surface.UpdateUpload(snap)
			}
		}
	}
}
