package memory

import (
	"context"
	"fmt"
	"sort"

	"jotdown/internal/domain"
	"jotdown/internal/domain/models"
)

type folderRepo struct {
	store *Store
}

func (r *folderRepo) Create(ctx context.Context, folder *models.Folder) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if folder.ParentFolder != nil {
		if _, ok := s.folders[*folder.ParentFolder]; !ok {
			return fmt.Errorf("folder %q: %w", folder.Name, domain.ErrParentNotFound)
		}
	}

	folder.ID = s.assignID()
	s.folders[folder.ID] = *folder
	return nil
}

func (r *folderRepo) GetByID(ctx context.Context, id int64) (*models.Folder, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	folder, ok := s.folders[id]
	if !ok {
		return nil, fmt.Errorf("folder %d: %w", id, domain.ErrNotFound)
	}
	return &folder, nil
}

func (r *folderRepo) Update(ctx context.Context, folder *models.Folder) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.folders[folder.ID]; !ok {
		return fmt.Errorf("folder %d: %w", folder.ID, domain.ErrNotFound)
	}
	if folder.ParentFolder != nil {
		if _, ok := s.folders[*folder.ParentFolder]; !ok {
			return fmt.Errorf("folder %d: %w", folder.ID, domain.ErrParentNotFound)
		}
	}

	s.folders[folder.ID] = *folder
	return nil
}

// Delete mirrors the production constraints: child folders block the
// delete, while documents and user root references detach to nil.
func (r *folderRepo) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.folders[id]; !ok {
		return fmt.Errorf("folder %d: %w", id, domain.ErrNotFound)
	}

	for _, folder := range s.folders {
		if folder.ParentFolder != nil && *folder.ParentFolder == id {
			return fmt.Errorf("folder %d: %w", id, domain.ErrHasChildren)
		}
	}

	for docID, doc := range s.documents {
		if doc.ParentFolder != nil && *doc.ParentFolder == id {
			doc.ParentFolder = nil
			s.documents[docID] = doc
		}
	}
	for userID, user := range s.users {
		if user.RootFolder != nil && *user.RootFolder == id {
			user.RootFolder = nil
			s.users[userID] = user
		}
	}

	delete(s.folders, id)
	return nil
}

func (r *folderRepo) ListChildren(ctx context.Context, parentID *int64) ([]models.Folder, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var folders []models.Folder
	for _, folder := range s.folders {
		if sameParent(folder.ParentFolder, parentID) {
			folders = append(folders, folder)
		}
	}
	sortFoldersByName(folders)
	return folders, nil
}

func (r *folderRepo) ListAll(ctx context.Context) ([]models.Folder, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	folders := make([]models.Folder, 0, len(s.folders))
	for _, folder := range s.folders {
		folders = append(folders, folder)
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].ID < folders[j].ID })
	return folders, nil
}

func sameParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sortFoldersByName(folders []models.Folder) {
	sort.Slice(folders, func(i, j int) bool {
		if folders[i].Name != folders[j].Name {
			return folders[i].Name < folders[j].Name
		}
		return folders[i].ID < folders[j].ID
	})
}
