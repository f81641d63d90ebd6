// File: pkg/aggregate/traversal.go
package aggregate

import (
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// Discover lists every entry the selections contribute, without reading any
// file. Folder entries come first, in folder order and walk order, followed
// by the individually selected files in the order given.
func (a *Aggregator) Discover(folders, files []string) []Entry {
	var entries []Entry
	a.logger.Debug("Starting discovery", zap.Int("folderCount", len(folders)), zap.Int("fileCount", len(files)))

	for _, folder := range folders {
		found := a.walkFolder(folder)
		a.logger.Debug("Walked folder", zap.String("folder", folder), zap.Int("files", len(found)))
		entries = append(entries, found...)
	}

	for _, file := range files {
		cleaned := filepath.Clean(file)
		absPath, err := filepath.Abs(cleaned)
		if err != nil {
			a.logger.Warn("Failed to get absolute path", zap.String("path", file), zap.Error(err))
			absPath = cleaned
		}
		entries = append(entries, Entry{
			Name:    filepath.Base(cleaned),
			Origin:  filepath.Dir(cleaned),
			Path:    absPath,
			Display: cleaned,
			Source:  SourceFile,
		})
	}

	return entries
}

// walkFolder collects the files under one folder selection. A root that is
// empty, missing or not a directory contributes nothing.
func (a *Aggregator) walkFolder(folder string) []Entry {
	if folder == "" {
		a.logger.Warn("Skipping empty folder selection")
		return nil
	}

	root, err := filepath.Abs(folder)
	if err != nil {
		a.logger.Warn("Failed to get absolute path", zap.String("path", folder), zap.Error(err))
		return nil
	}

	info, err := a.fs.Stat(root)
	if err != nil {
		a.logger.Warn("Folder does not exist or cannot be accessed", zap.String("folder", root), zap.Error(err))
		return nil
	}
	if !info.IsDir() {
		a.logger.Warn("Folder selection is not a directory", zap.String("folder", root))
		return nil
	}

	var entries []Entry
	a.walkDir(root, root, folder, &entries)
	return entries
}

// walkDir visits dir top-down: its files in name order first, then each
// subdirectory that is not excluded, also in name order.
func (a *Aggregator) walkDir(dir, root, folder string, entries *[]Entry) {
	infos, err := a.fs.ReadDir(dir)
	if err != nil {
		a.logger.Warn("Failed to read directory", zap.String("directory", dir), zap.Error(err))
		return
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})

	var subdirs []string
	for _, info := range infos {
		path := filepath.Join(dir, info.Name())
		rel, err := filepath.Rel(root, path)
		if err != nil {
			a.logger.Warn("Unable to determine relative path", zap.String("path", path), zap.Error(err))
			continue
		}

		if a.isDir(path, info) {
			if info.Mode()&os.ModeSymlink != 0 {
				a.logger.Debug("Not following directory link", zap.String("directory", path))
				continue
			}
			if matched, p := a.exclude.MatchesWithPattern(rel); matched {
				a.logger.Debug("Pruning excluded directory", zap.String("directory", path), zap.String("pattern", p.Line))
				continue
			}
			subdirs = append(subdirs, path)
			continue
		}

		*entries = append(*entries, Entry{
			Name:    rel,
			Origin:  folder,
			Path:    path,
			Display: filepath.Join(folder, rel),
			Source:  SourceFolder,
		})
	}

	for _, sub := range subdirs {
		a.walkDir(sub, root, folder, entries)
	}
}

// isDir reports whether path is a directory, resolving symbolic links.
// Broken links count as files so they surface as unreadable blocks.
func (a *Aggregator) isDir(path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.IsDir()
	}
	target, err := a.fs.Stat(path)
	if err != nil {
		return false
	}
	return target.IsDir()
}
