package gesture

import "github.com/sirupsen/logrus"

// Detector turns raw touch events into OneFingerMove and TwoFingerMove
// gestures. It keeps the previous TouchState and publishes at most one
// gesture per input event.
//
// A Detector is idle when PreviousState is nil and tracking otherwise.
type Detector struct {
	bus      Publisher
	cfg      DetectorConfig
	previous *TouchState

	target  *Node
	handles []CallbackHandle
}

// NewDetector creates an idle detector publishing to bus. Use HandleTouch to
// feed it directly, or Attach to listen on a scene node.
func NewDetector(bus Publisher, cfg DetectorConfig) *Detector {
	return &Detector{bus: bus, cfg: cfg}
}

// PreviousState returns the last sampled state, or nil when idle.
func (d *Detector) PreviousState() *TouchState {
	return d.previous
}

// Target returns the node the detector listens on, or nil when detached.
func (d *Detector) Target() *Node {
	return d.target
}

// HandleTouch processes one raw touch event. Start, move, end and cancel
// events are all handled the same way.
func (d *Detector) HandleTouch(ev *TouchEvent) {
	current := Sample(ev)
	previous := d.previous

	switch {
	case current == nil:
		// Session over; nothing to publish.
	case current.TouchCount == 1:
		d.bus.Publish(GestureEvent{
			Kind:     OneFingerMove,
			Raw:      ev,
			Current:  current,
			Previous: previous,
		})
	case current.TouchCount == 2:
		change := 0.0
		if previous != nil {
			change = current.Spread - previous.Spread
		}
		d.bus.Publish(GestureEvent{
			Kind:         TwoFingerMove,
			Raw:          ev,
			Current:      current,
			Previous:     previous,
			SpreadChange: change,
		})
	default:
		logger.WithField("touches", current.TouchCount).Debug("ignoring unsupported touch count")
	}

	d.previous = current
}

// Attach starts listening for touch events. The target is the node named by
// the config's Target under owner's scene root; when Target is empty or does
// not resolve, owner itself is used. Attaching an attached detector moves it.
func (d *Detector) Attach(owner *Node) error {
	if owner == nil {
		return ErrNilNode
	}
	d.Detach()

	target := owner
	if d.cfg.Target != "" {
		if found := owner.Root().FindChild(d.cfg.Target); found != nil {
			target = found
		} else {
			logger.WithFields(logrus.Fields{
				"target": d.cfg.Target,
				"owner":  owner.Name,
			}).Debug("detector target not found, using owner")
		}
	}

	d.target = target
	d.handles = append(d.handles,
		target.OnTouchStart(d.HandleTouch),
		target.OnTouchMove(d.HandleTouch),
		target.OnTouchEnd(d.HandleTouch),
		target.OnTouchCancel(d.HandleTouch),
	)
	return nil
}

// Detach removes exactly the listeners added by Attach and resets the
// detector to idle. Safe to call on a detached detector.
func (d *Detector) Detach() {
	for _, h := range d.handles {
		h.Remove()
	}
	d.handles = d.handles[:0]
	d.target = nil
	d.previous = nil
}
