package tui

import "github.com/sofiya-medyamin/newsmood/internal/pipeline"

type runDoneMsg struct {
	outcome pipeline.Outcome
}

type exportDoneMsg struct {
	path string
	err  error
}

type openErrMsg struct {
	err error
}
