package handlers

import (
	"strconv"
	"strings"
)

// ActionKind enumerates every button the bot renders. Callback data is the
// encoded Action, parsed back at the transport boundary, so handlers never
// prefix-match raw strings.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionStartReport
	ActionToday
	ActionRange
	ActionObjectsMenu
	ActionAddObject
	ActionListObjects
	ActionDeleteMenu
	ActionBack

	// parameterized
	ActionToggleObject // ObjectID
	ActionDeleteObject // ObjectID
	ActionReady        // Ready

	ActionSelectAll
	ActionClearSelection
	ActionConfirmSelection
)

// Action is a decoded button press.
type Action struct {
	Kind     ActionKind
	ObjectID int64
	Ready    bool
}

var plainTokens = map[ActionKind]string{
	ActionStartReport:      "report",
	ActionToday:            "today",
	ActionRange:            "range",
	ActionObjectsMenu:      "objects",
	ActionAddObject:        "obj_add",
	ActionListObjects:      "obj_list",
	ActionDeleteMenu:       "obj_del",
	ActionBack:             "back",
	ActionSelectAll:        "sel_all",
	ActionClearSelection:   "sel_none",
	ActionConfirmSelection: "sel_done",
}

var plainKinds = func() map[string]ActionKind {
	m := make(map[string]ActionKind, len(plainTokens))
	for k, t := range plainTokens {
		m[t] = k
	}
	return m
}()

// Token serializes the action into callback data.
func (a Action) Token() string {
	switch a.Kind {
	case ActionToggleObject:
		return "tgl:" + strconv.FormatInt(a.ObjectID, 10)
	case ActionDeleteObject:
		return "del:" + strconv.FormatInt(a.ObjectID, 10)
	case ActionReady:
		if a.Ready {
			return "rdy:1"
		}
		return "rdy:0"
	default:
		return plainTokens[a.Kind]
	}
}

// ParseAction decodes callback data. Unknown or malformed tokens return
// ok=false and are ignored by the dispatcher.
func ParseAction(token string) (Action, bool) {
	if kind, ok := plainKinds[token]; ok {
		return Action{Kind: kind}, true
	}

	prefix, rest, found := strings.Cut(token, ":")
	if !found {
		return Action{}, false
	}
	switch prefix {
	case "tgl", "del":
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil || id <= 0 {
			return Action{}, false
		}
		kind := ActionToggleObject
		if prefix == "del" {
			kind = ActionDeleteObject
		}
		return Action{Kind: kind, ObjectID: id}, true
	case "rdy":
		switch rest {
		case "1":
			return Action{Kind: ActionReady, Ready: true}, true
		case "0":
			return Action{Kind: ActionReady}, true
		}
	}
	return Action{}, false
}
