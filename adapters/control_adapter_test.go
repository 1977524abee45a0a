package adapters

import "testing"

func TestControlAdapter_ConfigRoundTrip(t *testing.T) {
	c := NewControlAdapter()
	if err := c.SetConfig(map[string]any{"width": 170}); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if got := c.GetConfig()["width"]; got != 170 {
		t.Errorf("width = %v, want 170", got)
	}
}

func TestControlAdapter_Stats(t *testing.T) {
	c := NewControlAdapter()
	c.SetMetric("merges", uint64(3))
	c.PublishMetrics(map[string]any{"cells_merged": uint64(100)})
	stats := c.Stats()
	if stats["merges"] != uint64(3) || stats["cells_merged"] != uint64(100) {
		t.Errorf("stats = %v", stats)
	}
}
