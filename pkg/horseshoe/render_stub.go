//go:build noebiten

package horseshoe

import "context"

// runWindow has no window to open in noebiten builds; the slider runs
// headless until ctx is done.
func (s *sliderImpl) runWindow(ctx context.Context) error {
	s.log.Warn("built without ebiten, running headless")
	<-ctx.Done()
	return nil
}
