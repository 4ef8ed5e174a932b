//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package commander

import (
	"unicode/utf8"

	"github.com/timburks/iosplit/types"
)

// Action kinds
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionNewline
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionBackspace
	ActionControl
	ActionPrintable
)

func (k ActionKind) String() string {
	switch k {
	case ActionNewline:
		return "newline"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionBackspace:
		return "backspace"
	case ActionControl:
		return "control"
	case ActionPrintable:
		return "printable"
	default:
		return "none"
	}
}

// An Action is a classified key press. Control and printable actions
// carry the bytes they produce.
type Action struct {
	Kind  ActionKind
	Bytes []byte
}

// Classify converts a key event into an action.
func Classify(event *types.Event) Action {
	if event == nil || event.Type != types.EventKey {
		return Action{Kind: ActionNone}
	}
	if event.Ch != 0 {
		return Action{Kind: ActionPrintable, Bytes: utf8.AppendRune(nil, event.Ch)}
	}
	switch key := event.Key; key {
	case types.KeyEnter, types.KeyCtrlJ:
		return Action{Kind: ActionNewline}
	case types.KeyArrowUp:
		return Action{Kind: ActionUp}
	case types.KeyArrowDown:
		return Action{Kind: ActionDown}
	case types.KeyArrowLeft:
		return Action{Kind: ActionLeft}
	case types.KeyArrowRight:
		return Action{Kind: ActionRight}
	case types.KeyBackspace, types.KeyBackspace2:
		return Action{Kind: ActionBackspace}
	case types.KeyTab, types.KeySpace:
		return Action{Kind: ActionPrintable, Bytes: []byte{byte(key)}}
	default:
		if key < types.KeySpace {
			return Action{Kind: ActionControl, Bytes: []byte{byte(key)}}
		}
		return Action{Kind: ActionNone}
	}
}
