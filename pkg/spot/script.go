package spot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/majorfi/spotframe/pkg/utils"
	"github.com/sirupsen/logrus"
)

/**************************************************************************************************
** ActionKind is one discrete carousel transition a host can replay.
**************************************************************************************************/
type ActionKind string

const (
	ActionNext ActionKind = "next" // step forward and settle
	ActionPrev ActionKind = "prev" // step backward and settle
	ActionJump ActionKind = "jump" // tap on a visible photo, then settle
	ActionSync ActionKind = "sync" // selection changed by another view, then settle
	ActionDrag ActionKind = "drag" // full drag gesture of Value items, then settle
)

/**************************************************************************************************
** Action is a transition with its argument (target index for jump/sync, offset for drag).
**************************************************************************************************/
type Action struct {
	Kind  ActionKind
	Value int
}

// String renders the action the way ParseScript reads it.
func (a Action) String() string {
	switch a.Kind {
	case ActionNext, ActionPrev:
		return string(a.Kind)
	default:
		return fmt.Sprintf("%s=%d", a.Kind, a.Value)
	}
}

/**************************************************************************************************
** ParseScript parses a comma-separated transition script such as "next,prev,jump=3,drag=-2".
**
** @param script - Script text
** @return []Action - Parsed actions in order
** @return error - Error naming the first invalid entry
**************************************************************************************************/
func ParseScript(script string) ([]Action, error) {
	entries := utils.SplitList(script)
	actions := make([]Action, 0, len(entries))

	for _, entry := range entries {
		name, rawValue, hasValue := strings.Cut(entry, "=")
		kind := ActionKind(strings.ToLower(strings.TrimSpace(name)))

		switch kind {
		case ActionNext, ActionPrev:
			if hasValue {
				return nil, fmt.Errorf("action %q takes no value", entry)
			}
			actions = append(actions, Action{Kind: kind})
		case ActionJump, ActionSync, ActionDrag:
			if !hasValue {
				return nil, fmt.Errorf("action %q requires a value", entry)
			}
			value, err := strconv.Atoi(strings.TrimSpace(rawValue))
			if err != nil {
				return nil, fmt.Errorf("invalid value in action %q: %w", entry, err)
			}
			actions = append(actions, Action{Kind: kind, Value: value})
		default:
			return nil, fmt.Errorf("unknown action %q", entry)
		}
	}

	return actions, nil
}

/**************************************************************************************************
** Apply replays one action on the viewer's carousel and settles it once, as a host does when a
** gesture or animation completes.
**
** @param action - Transition to apply
** @return int - Committed real index after the action
** @return bool - False for an empty gallery
**************************************************************************************************/
func (v *Viewer) Apply(action Action) (int, bool) {
	index := v.gallery.Index()

	switch action.Kind {
	case ActionNext:
		index.Step(1)
	case ActionPrev:
		index.Step(-1)
	case ActionJump:
		index.JumpTo(action.Value)
	case ActionSync:
		index.SyncExternal(action.Value)
	case ActionDrag:
		index.BeginDrag()
		index.Drag(action.Value)
		index.EndDrag()
	}

	committed, ok := index.Settle()
	v.logger.WithFields(logrus.Fields{
		"action":   action.String(),
		"internal": index.Internal(),
	}).Debugf("Committed index %d", committed)
	return committed, ok
}
