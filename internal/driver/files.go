package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Ext is the extension of Grit files.
const Ext = ".grit"

// ListFiles expands paths into a sorted list of files. Directories are walked
// for *.grit files; plain files are taken as given whatever their extension.
func ListFiles(fs afero.Fs, paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := fs.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, filepath.Clean(p))
			continue
		}
		err = afero.Walk(fs, p, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				// скрытые каталоги (.git и т.п.) пропускаем
				if path != p && strings.HasPrefix(info.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(path, Ext) {
				files = append(files, filepath.Clean(path))
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	files = lo.Uniq(files)
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}
