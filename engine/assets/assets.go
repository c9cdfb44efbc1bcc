package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/wireframe/engine/assets/loaders"
	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/renderer/metadata"
)

var ErrManagerClosed = errors.New("asset manager already closed")

type AssetInfo struct {
	Path       string
	Type       metadata.ResourceType
	LastLoaded time.Time
	Dirty      bool
}

/**
 * @brief Loads scenes and models and watches the files it loaded. A change on
 * disk marks the asset dirty; Poll collects the dirty assets on the caller's
 * goroutine so reloads happen at a frame boundary.
 */
type AssetManager struct {
	assets  map[string]AssetInfo
	loaders map[metadata.ResourceType]Loader
	watched map[string]bool

	mutex sync.RWMutex

	done     chan struct{}
	wg       sync.WaitGroup
	fsnotify *fsnotify.Watcher
	isClosed bool
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[metadata.ResourceType]Loader),
		watched:  make(map[string]bool),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

func (am *AssetManager) Initialize() error {
	// Register loaders
	am.registerLoader(metadata.ResourceTypeScene, &loaders.SceneLoader{})
	am.registerLoader(metadata.ResourceTypeModel, &loaders.ModelLoader{})

	am.wg.Add(1)
	go am.start()
	return nil
}

func (am *AssetManager) Shutdown() error {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return ErrManagerClosed
	}
	am.isClosed = true
	am.mutex.Unlock()

	close(am.done)
	am.wg.Wait()
	return nil
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType metadata.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// LoadAsset reads path with the loader for its type and starts watching it.
func (am *AssetManager) LoadAsset(path string, params interface{}) (*metadata.Resource, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	assetType := determineAssetType(abs)
	loader, ok := am.loaders[assetType]
	if !ok {
		return nil, fmt.Errorf("no loader registered for %s (type %s)", path, assetType)
	}

	res, err := loader.Load(abs, assetType, params)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	if am.isClosed {
		return nil, ErrManagerClosed
	}
	am.assets[abs] = AssetInfo{
		Path:       abs,
		Type:       assetType,
		LastLoaded: time.Now(),
	}
	if err := am.watchDir(filepath.Dir(abs)); err != nil {
		core.LogWarn("could not watch %s: %s", filepath.Dir(abs), err)
	}
	return res, nil
}

func (am *AssetManager) UnloadAsset(asset *metadata.Resource) error {
	loader, ok := am.loaders[asset.Type]
	if !ok {
		return fmt.Errorf("no loader registered for type %s", asset.Type)
	}
	am.mutex.Lock()
	delete(am.assets, asset.FullPath)
	am.mutex.Unlock()
	return loader.Unload(asset)
}

// Poll returns the paths that changed since the previous call, fires an
// EVENT_CODE_ASSET_CHANGED event for each and clears their dirty flag.
func (am *AssetManager) Poll() []string {
	am.mutex.Lock()
	var changed []string
	for path, info := range am.assets {
		if info.Dirty {
			info.Dirty = false
			am.assets[path] = info
			changed = append(changed, path)
		}
	}
	am.mutex.Unlock()

	for _, path := range changed {
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_ASSET_CHANGED, Data: path})
	}
	return changed
}

// Directories are watched instead of files so editors that save through a
// rename keep reporting changes.
func (am *AssetManager) watchDir(dir string) error {
	if am.watched[dir] {
		return nil
	}
	if err := am.fsnotify.Add(dir); err != nil {
		return err
	}
	am.watched[dir] = true
	return nil
}

func (am *AssetManager) start() {
	defer am.wg.Done()
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				am.handleFileEvent(e.Name)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

// Handle the creation or modification of a watched file
func (am *AssetManager) handleFileEvent(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	info, ok := am.assets[filepath.Clean(path)]
	if !ok {
		return
	}
	info.Dirty = true
	am.assets[info.Path] = info
	core.LogDebug("asset changed: %s", info.Path)
}

func determineAssetType(path string) metadata.ResourceType {
	if loaders.IsSceneFile(path) {
		return metadata.ResourceTypeScene
	}
	switch filepath.Ext(path) {
	case ".obj", ".OBJ":
		return metadata.ResourceTypeModel
	default:
		return metadata.ResourceTypeNone
	}
}
