package ctxeval

import (
	"github.com/datar-psa/ctxeval/api"
	"github.com/datar-psa/ctxeval/document"
)

type Score = api.Score
type ScoreInputs = api.ScoreInputs
type Scorer = api.Scorer

type Conversation = document.Conversation
type Message = document.Message
type ContextDocument = document.ContextDocument
