package ui

import (
	"wpchat/model"
)

type Message = model.Message

type toolResultMsg = model.ToolResultMsg
type markdownRenderedMsg = model.MarkdownRenderedMsg
type copyResultMsg = model.CopyResultMsg
type flashTickMsg = model.FlashTickMsg
