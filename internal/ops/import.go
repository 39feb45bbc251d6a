package ops

import (
	"database/sql"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pcadley/satchel/internal/errors"
	"github.com/pcadley/satchel/internal/site"
	"github.com/pcadley/satchel/internal/sitelist"
)

// ImportInput contains parameters for the Import operation.
type ImportInput struct {
	Path string `json:"path"`
}

// ImportOutput contains the result of the Import operation.
type ImportOutput struct {
	Folders   int `json:"folders"`
	Bookmarks int `json:"bookmarks"`
	Count     int `json:"count"`
}

// importFile is the root structure of a bookmarks YAML file.
type importFile struct {
	Folders   []importFolder   `yaml:"folders"`
	Bookmarks []importBookmark `yaml:"bookmarks"`
}

// importFolder is a folder entry; folders nest arbitrarily.
type importFolder struct {
	Title     string           `yaml:"title"`
	Folders   []importFolder   `yaml:"folders"`
	Bookmarks []importBookmark `yaml:"bookmarks"`
}

// importBookmark is a single bookmark entry.
type importBookmark struct {
	Location  string `yaml:"location"`
	Title     string `yaml:"title"`
	Icon      string `yaml:"icon"`
	Partition int    `yaml:"partition"`
}

// Import reads a bookmarks YAML file and adds its folders and bookmarks to
// the site list, preserving nesting. Folders that already exist (same
// parent and title) are reused rather than duplicated.
func Import(database *sql.DB, input ImportInput) (*ImportOutput, error) {
	if input.Path == "" {
		return nil, errors.NewInvalidRequest("path is required")
	}

	data, err := os.ReadFile(input.Path)
	if err != nil {
		return nil, errors.NewImportFailed(input.Path, err)
	}
	var file importFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.NewImportFailed(input.Path, err)
	}

	list, err := loadList(database)
	if err != nil {
		return nil, err
	}

	out := &ImportOutput{}
	list = importInto(list, 0, file.Folders, file.Bookmarks, out)

	if err := saveList(database, list); err != nil {
		return nil, err
	}
	out.Count = len(list)
	return out, nil
}

// importInto adds folders and bookmarks under parentID, depth first.
func importInto(list sitelist.List, parentID int, folders []importFolder, bookmarks []importBookmark, out *ImportOutput) sitelist.List {
	for _, b := range bookmarks {
		if b.Location == "" {
			continue
		}
		d := site.Detail{
			Location: b.Location,
			Title:    b.Title,
			Favicon:  b.Icon,
			Tags:     []site.Tag{site.TagBookmark},
		}
		parent := parentID
		d.ParentFolderID = &parent
		if b.Partition != 0 {
			partition := b.Partition
			d.PartitionNumber = &partition
		}
		list = sitelist.Add(list, d, site.TagBookmark, nil, nowMillis)
		out.Bookmarks++
	}

	for _, f := range folders {
		if f.Title == "" {
			continue
		}
		folderID := findFolderByTitle(list, parentID, f.Title)
		if folderID == 0 {
			title := f.Title
			parent := parentID
			d := site.Detail{
				CustomTitle:    &title,
				ParentFolderID: &parent,
				Tags:           []site.Tag{site.TagBookmarkFolder},
			}
			list = sitelist.Add(list, d, site.TagBookmarkFolder, nil, nowMillis)
			folderID = findFolderByTitle(list, parentID, f.Title)
			out.Folders++
		}
		list = importInto(list, folderID, f.Folders, f.Bookmarks, out)
	}

	return list
}

// findFolderByTitle returns the id of the folder with the given custom
// title under parentID, or 0.
func findFolderByTitle(list sitelist.List, parentID int, title string) int {
	for _, s := range list {
		if s.HasTag(site.TagBookmarkFolder) && s.ParentFolderID == parentID && s.CustomTitle == title {
			return s.FolderID
		}
	}
	return 0
}
