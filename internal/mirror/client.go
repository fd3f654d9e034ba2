package mirror

import (
	"context"
	"sync"
	"time"

	"jotdown/internal/domain/models"
)

// Remote is the server surface the mirror client mutates through. Every
// call must either confirm the mutation or fail without side effects the
// client needs to know about; the mirror only advances on confirmation.
type Remote interface {
	Fetch(ctx context.Context) ([]models.Folder, []models.Document, error)
	CreateFolder(ctx context.Context, name string, parent *int64) (*models.Folder, error)
	CreateDocument(ctx context.Context, name, text string, parent *int64) (*models.Document, error)
	RenameFolder(ctx context.Context, id int64, name string) error
	UpdateDocument(ctx context.Context, id int64, name, text *string) (*models.Document, error)
	MoveFolder(ctx context.Context, id int64, newParentID *int64) error
	MoveDocument(ctx context.Context, id int64, newFolderID *int64) error
	DeleteFolder(ctx context.Context, id int64) error
	DeleteDocument(ctx context.Context, id int64) error
}

// Client keeps a mirror of the server tree and applies mutations with a
// confirm-then-patch protocol: the remote call happens first, and the
// local tree is swapped for a new one only when the call succeeds. On
// any error, including a timeout, the previous tree stays in place and
// the caller can simply retry.
type Client struct {
	remote  Remote
	timeout time.Duration

	mu   sync.RWMutex
	tree Tree
}

// NewClient creates a mirror client. Remote calls are bounded by timeout.
func NewClient(remote Remote, timeout time.Duration) *Client {
	return &Client{
		remote:  remote,
		timeout: timeout,
	}
}

// Tree returns the current mirror. The returned tree is never mutated by
// the client afterwards; later mutations produce new trees.
func (c *Client) Tree() Tree {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree
}

// Refresh rebuilds the whole mirror from the server's flat listings
func (c *Client) Refresh(ctx context.Context) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	folders, documents, err := c.remote.Fetch(ctx)
	if err != nil {
		return err
	}

	c.swap(Build(folders, documents))
	return nil
}

// CreateFolder creates a folder on the server and inserts the confirmed
// row into the mirror.
func (c *Client) CreateFolder(ctx context.Context, name string, parent *int64) (*models.Folder, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	folder, err := c.remote.CreateFolder(ctx, name, parent)
	if err != nil {
		return nil, err
	}

	c.apply(func(t Tree) Tree { return t.Insert(FolderNode(*folder), folder.ParentFolder) })
	return folder, nil
}

// CreateDocument creates a document on the server and inserts the
// confirmed row into the mirror.
func (c *Client) CreateDocument(ctx context.Context, name, text string, parent *int64) (*models.Document, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	doc, err := c.remote.CreateDocument(ctx, name, text, parent)
	if err != nil {
		return nil, err
	}

	c.apply(func(t Tree) Tree { return t.Insert(DocumentNode(*doc), doc.ParentFolder) })
	return doc, nil
}

// RenameFolder renames on the server, then in the mirror
func (c *Client) RenameFolder(ctx context.Context, id int64, name string) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	if err := c.remote.RenameFolder(ctx, id, name); err != nil {
		return err
	}

	c.apply(func(t Tree) Tree { return t.Rename(KindFolder, id, name) })
	return nil
}

// UpdateDocument applies a partial name/text edit on the server and
// patches the mirror from the confirmed row, so an absent field picks up
// whatever value the server kept.
func (c *Client) UpdateDocument(ctx context.Context, id int64, name, text *string) (*models.Document, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	doc, err := c.remote.UpdateDocument(ctx, id, name, text)
	if err != nil {
		return nil, err
	}

	c.apply(func(t Tree) Tree { return t.UpdateDocument(doc.ID, doc.Name, doc.Text) })
	return doc, nil
}

// MoveFolder moves on the server, then in the mirror
func (c *Client) MoveFolder(ctx context.Context, id int64, newParentID *int64) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	if err := c.remote.MoveFolder(ctx, id, newParentID); err != nil {
		return err
	}

	c.apply(func(t Tree) Tree { return t.Move(KindFolder, id, newParentID) })
	return nil
}

// MoveDocument moves on the server, then in the mirror
func (c *Client) MoveDocument(ctx context.Context, id int64, newFolderID *int64) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	if err := c.remote.MoveDocument(ctx, id, newFolderID); err != nil {
		return err
	}

	c.apply(func(t Tree) Tree { return t.Move(KindDocument, id, newFolderID) })
	return nil
}

// DeleteFolder deletes on the server, then removes from the mirror
func (c *Client) DeleteFolder(ctx context.Context, id int64) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	if err := c.remote.DeleteFolder(ctx, id); err != nil {
		return err
	}

	c.apply(func(t Tree) Tree {
		next, _ := t.Remove(KindFolder, id)
		return next
	})
	return nil
}

// DeleteDocument deletes on the server, then removes from the mirror
func (c *Client) DeleteDocument(ctx context.Context, id int64) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	if err := c.remote.DeleteDocument(ctx, id); err != nil {
		return err
	}

	c.apply(func(t Tree) Tree {
		next, _ := t.Remove(KindDocument, id)
		return next
	})
	return nil
}

func (c *Client) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) apply(fn func(Tree) Tree) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tree = fn(c.tree)
}

func (c *Client) swap(t Tree) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tree = t
}
