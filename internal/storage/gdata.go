package storage

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// gdata object and property holding the best score.
const (
	saveDataObject = "scores"
	saveDataBest   = "best"
)

// SaveData keeps the best score in the per-user application data directory
// managed by gdata. It has no run history.
type SaveData struct {
	mu      sync.Mutex
	manager *gdata.Manager
}

// OpenSaveData opens the data directory for appName.
func OpenSaveData(appName string) (*SaveData, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open save data %q: %w", appName, err)
	}
	return &SaveData{manager: m}, nil
}

// GetBest returns the stored best score, or 0 if none was saved.
func (d *SaveData) GetBest() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load()
}

// SetBest raises the stored best score to score; lower scores are ignored.
func (d *SaveData) SetBest(score int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	best, err := d.load()
	if err != nil {
		return err
	}
	if score <= best {
		return nil
	}
	return d.save(score)
}

// Clear resets the best score to 0.
func (d *SaveData) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.save(0)
}

func (d *SaveData) load() (int, error) {
	if !d.manager.ObjectPropExists(saveDataObject, saveDataBest) {
		return 0, nil
	}
	data, err := d.manager.LoadObjectProp(saveDataObject, saveDataBest)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load best score: %w", err)
	}
	best, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt best score %q: %w", data, err)
	}
	return best, nil
}

func (d *SaveData) save(score int) error {
	if err := d.manager.SaveObjectProp(saveDataObject, saveDataBest, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// Close is a no-op; gdata writes through on every save.
func (d *SaveData) Close() error {
	return nil
}
