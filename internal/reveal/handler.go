package reveal

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/net/websocket"

	"github.com/homeprohq/homepro-platform/internal/motion"
	"github.com/homeprohq/homepro-platform/internal/observability/metrics"
	"github.com/homeprohq/homepro-platform/internal/timing"
	"github.com/homeprohq/homepro-platform/internal/transition"
	"github.com/homeprohq/homepro-platform/pkg/logging"
)

// InboundMessage is what the page widget sends over the feed.
type InboundMessage struct {
	Type string `json:"type"` // "attach", "visibility", "detach", "preference", "navigate", "resize", "menu_toggle", "typing", "ping"

	ElementID string `json:"element_id,omitempty"`

	// attach fields
	Threshold      float64 `json:"threshold,omitempty"`
	RootMargin     string  `json:"root_margin,omitempty"`
	TriggerOnce    *bool   `json:"trigger_once,omitempty"`
	Group          string  `json:"group,omitempty"`
	StaggerDelayMs int     `json:"stagger_delay_ms,omitempty"`

	// visibility fields
	Fraction float64 `json:"fraction,omitempty"`

	// preference fields
	Reduced bool `json:"reduced,omitempty"`

	// navigate fields
	Direction string `json:"direction,omitempty"`

	// resize fields
	Width int `json:"width,omitempty"`

	// typing fields
	Text         string `json:"text,omitempty"`
	SpeedMs      int    `json:"speed_ms,omitempty"`
	StartDelayMs int    `json:"start_delay_ms,omitempty"`
}

// OutboundMessage is what we push back to the widget.
type OutboundMessage struct {
	Type      string `json:"type"` // "reveal", "attached", "transition", "menu", "typing", "error", "pong"
	ElementID string `json:"element_id,omitempty"`
	Revealed  bool   `json:"revealed,omitempty"`
	DelayMs   int64  `json:"delay_ms,omitempty"`
	Text      string `json:"text,omitempty"`

	// transition fields
	State string `json:"state,omitempty"`
	Class string `json:"class,omitempty"`

	// menu fields
	Open bool `json:"open,omitempty"`

	// typing fields
	Complete bool `json:"complete,omitempty"`
}

// HandlerConfig wires the feed handler dependencies. The feed is the page's
// animation contract: reveal scheduling, page transitions, the mobile menu
// breakpoint, and typing sequences all run server-side per connection.
type HandlerConfig struct {
	Metrics *metrics.SiteMetrics
	Logger  *logging.Logger

	// DefaultStagger is used when an attach names a group without a
	// stagger delay.
	DefaultStagger time.Duration

	// Page transition phase durations.
	TransitionLeave time.Duration
	TransitionEnter time.Duration

	// DesktopMinWidth collapses the mobile menu on resize past it.
	DesktopMinWidth int

	// ReducedMotion is the default for connections that do not say.
	ReducedMotion bool

	// Delay overrides the timer primitive, used by tests.
	Delay timing.Delay
}

// Handler serves the animation feed. Each connection owns its own scheduler,
// transition coordinator, menu state, and typers; closing the connection
// tears them all down, cancelling any pending timers.
type Handler struct {
	logger         *logging.Logger
	metrics        *metrics.SiteMetrics
	delay          timing.Delay
	stagger        time.Duration
	leave          time.Duration
	enter          time.Duration
	desktopWidth   int
	reducedDefault bool
}

// NewHandler creates a feed handler.
func NewHandler(cfg HandlerConfig) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.DefaultStagger <= 0 {
		cfg.DefaultStagger = 100 * time.Millisecond
	}
	if cfg.Delay == nil {
		cfg.Delay = timing.Real
	}
	return &Handler{
		logger:         cfg.Logger,
		metrics:        cfg.Metrics,
		delay:          cfg.Delay,
		stagger:        cfg.DefaultStagger,
		leave:          cfg.TransitionLeave,
		enter:          cfg.TransitionEnter,
		desktopWidth:   cfg.DesktopMinWidth,
		reducedDefault: cfg.ReducedMotion,
	}
}

// HandleWebSocket upgrades to WebSocket and serves the animation feed.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, r *http.Request) {
	reduced := h.reducedDefault
	if v := r.URL.Query().Get("reduced"); v != "" {
		reduced, _ = strconv.ParseBool(v)
	}
	pref := motion.NewRuntimePreference(reduced)

	// Sends happen from the receive loop and from timer callbacks.
	var sendMu sync.Mutex
	send := func(msg OutboundMessage) {
		sendMu.Lock()
		defer sendMu.Unlock()
		_ = websocket.JSON.Send(conn, msg)
	}

	scheduler := New(pref,
		WithDelay(h.delay),
		WithSink(func(e Event) {
			h.metrics.ObserveRevealEvent(e.Group)
			send(OutboundMessage{
				Type:      "reveal",
				ElementID: e.ElementID,
				Revealed:  e.Revealed,
				DelayMs:   e.Delay.Milliseconds(),
			})
		}),
	)
	defer scheduler.Close()

	coordinator := transition.New(pref,
		transition.WithDelay(h.delay),
		transition.WithDurations(h.leave, h.enter),
		transition.WithSink(func(state transition.State, class string) {
			send(OutboundMessage{Type: "transition", State: state.String(), Class: class})
		}),
	)
	defer coordinator.Close()

	menu := motion.NewMenuState(motion.NewBreakpoint(h.desktopWidth))

	typers := make(map[string]*motion.Typer)
	defer func() {
		for _, ty := range typers {
			ty.Close()
		}
	}()

	h.logger.Debug("reveal: connection opened", "remote", r.RemoteAddr, "reduced", reduced)

	for {
		var msg InboundMessage
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			h.logger.Debug("reveal: connection closed", "error", err)
			return
		}

		switch msg.Type {
		case "ping":
			send(OutboundMessage{Type: "pong"})

		case "preference":
			pref.Set(msg.Reduced)

		case "attach":
			if msg.ElementID == "" {
				send(OutboundMessage{Type: "error", Text: "missing element_id"})
				continue
			}
			if err := scheduler.Attach(msg.ElementID, h.attachOptions(msg)); err != nil {
				send(OutboundMessage{Type: "error", ElementID: msg.ElementID, Text: err.Error()})
				continue
			}
			send(OutboundMessage{Type: "attached", ElementID: msg.ElementID})

		case "visibility":
			if msg.ElementID == "" {
				continue
			}
			scheduler.Report(msg.ElementID, msg.Fraction)

		case "detach":
			scheduler.Detach(msg.ElementID)
			if ty, ok := typers[msg.ElementID]; ok {
				ty.Close()
				delete(typers, msg.ElementID)
			}

		case "navigate":
			coordinator.Start(msg.Direction)

		case "resize":
			menu.Resize(msg.Width)
			send(OutboundMessage{Type: "menu", Open: menu.Open()})

		case "menu_toggle":
			send(OutboundMessage{Type: "menu", Open: menu.Toggle()})

		case "typing":
			if msg.ElementID == "" || msg.Text == "" {
				send(OutboundMessage{Type: "error", Text: "typing needs element_id and text"})
				continue
			}
			if prev, ok := typers[msg.ElementID]; ok {
				prev.Close()
			}
			elementID := msg.ElementID
			ty := motion.NewTyper(msg.Text, pref,
				motion.WithTyperDelay(h.delay),
				motion.WithTypingSpeed(time.Duration(msg.SpeedMs)*time.Millisecond),
				motion.WithStartDelay(time.Duration(msg.StartDelayMs)*time.Millisecond),
				motion.WithTypingSink(func(displayed string, complete bool) {
					send(OutboundMessage{
						Type:      "typing",
						ElementID: elementID,
						Text:      displayed,
						Complete:  complete,
					})
				}),
			)
			typers[elementID] = ty
			ty.Start()
		}
	}
}

func (h *Handler) attachOptions(msg InboundMessage) Options {
	opts := DefaultOptions()
	if msg.Threshold > 0 {
		opts.Threshold = msg.Threshold
	}
	if msg.RootMargin != "" {
		opts.RootMargin = msg.RootMargin
	}
	if msg.TriggerOnce != nil {
		opts.TriggerOnce = *msg.TriggerOnce
	}
	if msg.Group != "" {
		opts.Group = msg.Group
		if msg.StaggerDelayMs > 0 {
			opts.StaggerDelay = time.Duration(msg.StaggerDelayMs) * time.Millisecond
		} else {
			opts.StaggerDelay = h.stagger
		}
	}
	return opts
}
