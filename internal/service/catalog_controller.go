package service

import (
	"context"
	"sync"
	"time"

	"github.com/Dmungal1308/QuickSales-sub000/internal/adapter/nats"
	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
	"github.com/Dmungal1308/QuickSales-sub000/internal/platform/logger"
	"github.com/Dmungal1308/QuickSales-sub000/internal/repository"
)

// View selects which projection of the product collection a controller
// instance serves. One controller backs one screen.
type View int

const (
	ViewAvailable View = iota
	ViewOwned
	ViewPurchased
	ViewSold
	ViewFavorites
)

func (v View) String() string {
	switch v {
	case ViewAvailable:
		return "available"
	case ViewOwned:
		return "owned"
	case ViewPurchased:
		return "purchased"
	case ViewSold:
		return "sold"
	case ViewFavorites:
		return "favorites"
	}
	return "unknown"
}

type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
)

// CatalogListener receives state pushes. Callbacks may be nil; they are
// invoked on whichever goroutine ran the triggering operation.
type CatalogListener struct {
	OnState    func(State)
	OnProducts func([]entity.Product)
	OnError    func(error)
}

// CatalogController is the derived-view component: it holds the
// authoritative in-memory list for one view, the last applied text filter
// and the favorite-id set, and recomputes the visible projection on load,
// filter change and after every mutation.
//
// Every operation is expected to run as its own task triggered by a UI
// event. Overlapping Load calls are not coalesced: the last response to
// arrive wins. All remote calls are bound to the controller's scope
// context, so Close cancels whatever is still in flight.
type CatalogController struct {
	view      View
	products  repository.ProductRepository
	favorites repository.FavoriteRepository
	publisher nats.MessagePublisher
	log       logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	state    State
	all      []entity.Product
	visible  []entity.Product
	filter   string
	favs     *FavoriteSet
	listener CatalogListener
}

func NewCatalogController(
	parent context.Context,
	view View,
	products repository.ProductRepository,
	favorites repository.FavoriteRepository,
	publisher nats.MessagePublisher,
	log logger.Logger,
) *CatalogController {
	if parent == nil {
		parent = context.Background()
	}
	if publisher == nil {
		publisher = nats.NewNoopPublisher()
	}
	if log == nil {
		log = logger.NoOp()
	}
	ctx, cancel := context.WithCancel(parent)
	return &CatalogController{
		view:      view,
		products:  products,
		favorites: favorites,
		publisher: publisher,
		log:       log.With("view", view.String()),
		ctx:       ctx,
		cancel:    cancel,
		state:     StateIdle,
		favs:      NewFavoriteSet(),
	}
}

func (c *CatalogController) SetListener(l CatalogListener) {
	c.mu.Lock()
	c.listener = l
	c.mu.Unlock()
}

// Close cancels the controller scope; in-flight requests of a torn-down
// screen no longer mutate its state.
func (c *CatalogController) Close() {
	c.cancel()
}

// Load fetches the view's product subset (and the favorite set, when a
// favorite repository is wired), replaces the authoritative list and
// re-derives the visible projection with the active filter. On failure the
// state reverts to its pre-load value and the error goes out through the
// one-shot OnError channel as well as the return value.
func (c *CatalogController) Load() error {
	c.mu.Lock()
	prev := c.state
	c.state = StateLoading
	c.mu.Unlock()
	c.notifyState(StateLoading)

	products, err := c.fetch(c.ctx)
	if err != nil {
		c.log.Warnf("CatalogController.Load: fetch failed: %v", err)
		c.mu.Lock()
		if c.state == StateLoading {
			c.state = prev
		}
		restored := c.state
		c.mu.Unlock()
		c.notifyState(restored)
		c.notifyError(err)
		return err
	}

	favIDs, favErr := c.fetchFavoriteIDs(c.ctx)

	c.mu.Lock()
	c.all = products
	if favErr == nil && favIDs != nil {
		c.favs.Replace(favIDs)
	}
	c.state = StateReady
	visible := c.deriveLocked()
	c.visible = visible
	c.mu.Unlock()

	c.notifyState(StateReady)
	c.notifyProducts(visible)
	if favErr != nil {
		c.log.Warnf("CatalogController.Load: favorite refresh failed: %v", favErr)
	}
	return nil
}

// SetFilter normalizes the text and recomputes the visible projection from
// the already loaded list. It never refetches; the empty filter is the
// identity projection.
func (c *CatalogController) SetFilter(text string) {
	normalized := NormalizeFilter(text)
	c.mu.Lock()
	c.filter = normalized
	visible := c.deriveLocked()
	c.visible = visible
	c.mu.Unlock()
	c.notifyProducts(visible)
}

func (c *CatalogController) Filter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

func (c *CatalogController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Visible returns a copy of the current visible projection.
func (c *CatalogController) Visible() []entity.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.Product, len(c.visible))
	copy(out, c.visible)
	return out
}

func (c *CatalogController) IsFavorite(productID int64) bool {
	return c.favs.Contains(productID)
}

// ToggleFavorite flips membership optimistically, confirms with the
// backend, and rolls the flip back when the mutation fails.
func (c *CatalogController) ToggleFavorite(productID int64) error {
	adding := c.favs.BeginToggle(productID)
	c.refreshVisible()

	var err error
	if adding {
		_, err = c.favorites.Add(c.ctx, productID)
	} else {
		err = c.favorites.Remove(c.ctx, productID)
	}
	if err != nil {
		c.log.Warnf("CatalogController.ToggleFavorite: mutation failed, rolling back: %v", err)
		c.favs.Rollback(productID)
		c.refreshVisible()
		c.notifyError(err)
		return err
	}

	c.favs.Commit(productID)
	subject := SubjectFavoriteRemoved
	if adding {
		subject = SubjectFavoriteAdded
	}
	c.publish(subject, FavoriteEvent{ProductID: productID, OccurredAt: time.Now().UTC()})
	return nil
}

// Purchase buys the product and resynchronizes by an unconditional reload.
func (c *CatalogController) Purchase(productID int64) error {
	if _, err := c.products.Purchase(c.ctx, productID); err != nil {
		err = normalizeServerError(err)
		c.notifyError(err)
		return err
	}
	c.publish(SubjectProductPurchased, ProductEvent{ProductID: productID, OccurredAt: time.Now().UTC()})
	return c.Load()
}

func (c *CatalogController) Create(draft entity.ProductDraft) error {
	product, err := c.products.Create(c.ctx, draft)
	if err != nil {
		c.notifyError(err)
		return err
	}
	c.publish(SubjectProductCreated, ProductEvent{ProductID: product.ID, OccurredAt: time.Now().UTC()})
	return c.Load()
}

func (c *CatalogController) Update(productID int64, draft entity.ProductDraft) error {
	if _, err := c.products.Update(c.ctx, productID, draft); err != nil {
		c.notifyError(err)
		return err
	}
	c.publish(SubjectProductUpdated, ProductEvent{ProductID: productID, OccurredAt: time.Now().UTC()})
	return c.Load()
}

func (c *CatalogController) Delete(productID int64) error {
	if err := c.products.Delete(c.ctx, productID); err != nil {
		c.notifyError(err)
		return err
	}
	c.publish(SubjectProductDeleted, ProductEvent{ProductID: productID, OccurredAt: time.Now().UTC()})
	return c.Load()
}

func (c *CatalogController) fetch(ctx context.Context) ([]entity.Product, error) {
	switch c.view {
	case ViewOwned:
		return c.products.ListOwned(ctx)
	case ViewPurchased:
		return c.products.ListPurchased(ctx)
	case ViewSold:
		return c.products.ListSold(ctx)
	case ViewFavorites:
		// Membership filtering happens at derive time against the
		// favorite set, so the favorites view keeps the whole collection
		// as its authoritative list.
		return c.products.List(ctx)
	default:
		return c.products.ListAvailable(ctx)
	}
}

func (c *CatalogController) fetchFavoriteIDs(ctx context.Context) ([]int64, error) {
	if c.favorites == nil {
		return nil, nil
	}
	favorites, err := c.favorites.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ProductID)
	}
	return ids, nil
}

// deriveLocked recomputes the visible projection. Callers hold c.mu.
func (c *CatalogController) deriveLocked() []entity.Product {
	out := make([]entity.Product, 0, len(c.all))
	for _, p := range c.all {
		if c.view == ViewFavorites && !c.favs.Contains(p.ID) {
			continue
		}
		if !matchesName(p, c.filter) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (c *CatalogController) refreshVisible() {
	c.mu.Lock()
	visible := c.deriveLocked()
	c.visible = visible
	c.mu.Unlock()
	c.notifyProducts(visible)
}

func (c *CatalogController) publish(subject string, msg interface{}) {
	if err := c.publisher.Publish(c.ctx, subject, msg); err != nil {
		c.log.Warnf("CatalogController.publish: failed to publish %s: %v", subject, err)
	}
}

func (c *CatalogController) notifyState(s State) {
	c.mu.Lock()
	cb := c.listener.OnState
	c.mu.Unlock()
	if cb != nil {
		cb(s)
	}
}

func (c *CatalogController) notifyProducts(products []entity.Product) {
	c.mu.Lock()
	cb := c.listener.OnProducts
	c.mu.Unlock()
	if cb != nil {
		cb(products)
	}
}

func (c *CatalogController) notifyError(err error) {
	c.mu.Lock()
	cb := c.listener.OnError
	c.mu.Unlock()
	if cb != nil {
		cb(err)
	}
}
