package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// AuctionStore defines the persistence interface for the auction system.
//
// UpdateLot is the transaction primitive for bidding: the callback runs
// with the auction's lock held, so two concurrent mutations of the same
// lot can never interleave their read-modify-write cycles.
type AuctionStore interface {
	SaveAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	GetLot(auctionID, lotID string) (model.Lot, error)
	ListAuctions() ([]model.Auction, error)
	DeleteAuction(auctionID string) error
	UpdateAuction(auctionID string, fn func(*model.Auction) error) error
	UpdateLot(auctionID, lotID string, fn func(*model.Auction, *model.Lot) error) error
	SaveInvoices(invoices []model.Invoice) error
	ListInvoices(auctionID string) ([]model.Invoice, error)
}

// FileStore is a JSON-file-backed implementation of AuctionStore.
// Each auction lives in its own file under <dir>/auctions, keyed by
// auction id, so writes to different auctions never clobber each other.
// A per-auction mutex serializes the read-modify-write cycle within one
// auction; writes go through a temp file plus rename.
type FileStore struct {
	dir string

	mu    sync.Mutex // guards locks
	locks map[string]*sync.Mutex

	invMu sync.Mutex // guards the invoices file
}

// NewFileStore creates a FileStore rooted at dir, creating the layout
// on first use.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, "auctions"), 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir %s: %w", dir, err)
	}
	return &FileStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// lockFor returns the mutex serializing access to one auction's file.
func (s *FileStore) lockFor(auctionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[auctionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[auctionID] = l
	}
	return l
}

func (s *FileStore) auctionPath(auctionID string) (string, error) {
	// IDs become file names; anything path-like is rejected outright.
	if auctionID == "" || strings.ContainsAny(auctionID, `/\.`) {
		return "", fmt.Errorf("store: bad auction id %q: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return filepath.Join(s.dir, "auctions", auctionID+".json"), nil
}

func (s *FileStore) readAuction(path string) (model.Auction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Auction{}, auctionerrors.ErrAuctionNotFound
		}
		return model.Auction{}, fmt.Errorf("store: read %s: %w", path, err)
	}
	var a model.Auction
	if err := json.Unmarshal(data, &a); err != nil {
		return model.Auction{}, fmt.Errorf("store: decode %s: %w", path, err)
	}
	return a, nil
}

func (s *FileStore) writeAuction(path string, a model.Auction) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode auction %s: %w", a.ID, err)
	}
	return atomicWrite(path, data)
}

// atomicWrite replaces path via a temp file and rename so readers never
// observe a partially written record.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("store: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: rename into place: %w", err)
	}
	return nil
}

// SaveAuction creates or replaces an auction record.
func (s *FileStore) SaveAuction(auction model.Auction) error {
	path, err := s.auctionPath(auction.ID)
	if err != nil {
		return err
	}
	l := s.lockFor(auction.ID)
	l.Lock()
	defer l.Unlock()
	return s.writeAuction(path, auction)
}

// GetAuction returns a copy of the auction with the given id.
func (s *FileStore) GetAuction(auctionID string) (model.Auction, error) {
	path, err := s.auctionPath(auctionID)
	if err != nil {
		return model.Auction{}, err
	}
	l := s.lockFor(auctionID)
	l.Lock()
	defer l.Unlock()
	return s.readAuction(path)
}

// GetLot returns a copy of one lot.
func (s *FileStore) GetLot(auctionID, lotID string) (model.Lot, error) {
	a, err := s.GetAuction(auctionID)
	if err != nil {
		return model.Lot{}, err
	}
	lot := a.LotByID(lotID)
	if lot == nil {
		return model.Lot{}, fmt.Errorf("store: lot %s in auction %s: %w", lotID, auctionID, auctionerrors.ErrLotNotFound)
	}
	return *lot, nil
}

// ListAuctions returns every stored auction.
func (s *FileStore) ListAuctions() ([]model.Auction, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, "auctions"))
	if err != nil {
		return nil, fmt.Errorf("store: list auctions: %w", err)
	}
	auctions := make([]model.Auction, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
			continue
		}
		a, err := s.GetAuction(strings.TrimSuffix(name, ".json"))
		if err != nil {
			return nil, err
		}
		auctions = append(auctions, a)
	}
	return auctions, nil
}

// DeleteAuction removes an auction and, logically, all its lots.
func (s *FileStore) DeleteAuction(auctionID string) error {
	path, err := s.auctionPath(auctionID)
	if err != nil {
		return err
	}
	l := s.lockFor(auctionID)
	l.Lock()
	defer l.Unlock()
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("store: delete auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
		}
		return fmt.Errorf("store: delete auction %s: %w", auctionID, err)
	}
	return nil
}

// UpdateAuction runs fn against the auction under its lock and persists
// the result. When fn returns an error nothing is written.
func (s *FileStore) UpdateAuction(auctionID string, fn func(*model.Auction) error) error {
	path, err := s.auctionPath(auctionID)
	if err != nil {
		return err
	}
	l := s.lockFor(auctionID)
	l.Lock()
	defer l.Unlock()

	a, err := s.readAuction(path)
	if err != nil {
		return err
	}
	if err := fn(&a); err != nil {
		return err
	}
	return s.writeAuction(path, a)
}

// UpdateLot runs fn against one lot (and its auction) under the
// auction's lock, persisting the result. This is the only path bidding
// and closing use to mutate lot state.
func (s *FileStore) UpdateLot(auctionID, lotID string, fn func(*model.Auction, *model.Lot) error) error {
	return s.UpdateAuction(auctionID, func(a *model.Auction) error {
		lot := a.LotByID(lotID)
		if lot == nil {
			return fmt.Errorf("store: lot %s in auction %s: %w", lotID, auctionID, auctionerrors.ErrLotNotFound)
		}
		return fn(a, lot)
	})
}

func (s *FileStore) invoicesPath() string {
	return filepath.Join(s.dir, "invoices.json")
}

// SaveInvoices appends invoices to the invoice file.
func (s *FileStore) SaveInvoices(invoices []model.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}
	s.invMu.Lock()
	defer s.invMu.Unlock()

	existing, err := s.readInvoices()
	if err != nil {
		return err
	}
	existing = append(existing, invoices...)
	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode invoices: %w", err)
	}
	return atomicWrite(s.invoicesPath(), data)
}

// ListInvoices returns all invoices for an auction.
func (s *FileStore) ListInvoices(auctionID string) ([]model.Invoice, error) {
	s.invMu.Lock()
	defer s.invMu.Unlock()

	all, err := s.readInvoices()
	if err != nil {
		return nil, err
	}
	invoices := make([]model.Invoice, 0)
	for _, inv := range all {
		if inv.AuctionID == auctionID {
			invoices = append(invoices, inv)
		}
	}
	return invoices, nil
}

func (s *FileStore) readInvoices() ([]model.Invoice, error) {
	data, err := os.ReadFile(s.invoicesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read invoices: %w", err)
	}
	var invoices []model.Invoice
	if err := json.Unmarshal(data, &invoices); err != nil {
		return nil, fmt.Errorf("store: decode invoices: %w", err)
	}
	return invoices, nil
}
