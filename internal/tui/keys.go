package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Back     key.Binding
	Enter    key.Binding
	Theme    key.Binding
	Reselect key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Copy     key.Binding
	Reset    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "退出")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "返回")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "确认")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "切换主题")),
		Reselect: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "重择生肖")),
		Up:       key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑", "上一项")),
		Down:     key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓", "下一项")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "减")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "加")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "复制报告")),
		Reset:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "重新起卦")),
	}
}

// stepHelp implements help.KeyMap for whatever the current step offers.
type stepHelp []key.Binding

func (h stepHelp) ShortHelp() []key.Binding  { return h }
func (h stepHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
