package mockgit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewMockGit returns a scripted git double. Expected commands are asserted
// in order and each can respond with canned output or a canned error.
func NewMockGit(t *testing.T) *mock {
	return &mock{
		assert: require.New(t),
	}
}

type mock struct {
	assert      *require.Assertions
	rootdir     string
	expectedCmd []string
	response    []cmdresponse
}

type cmdresponse struct {
	output string
	err    error
}

func (m *mock) Git(args string, output *string) error {
	m.assert.NotEmpty(m.expectedCmd, "unexpected git command: git "+args)

	expected := m.expectedCmd[0]
	actual := "git " + args
	m.assert.Equal(expected, actual)

	resp := m.response[0]
	if output != nil {
		*output = resp.output
	}

	m.expectedCmd = m.expectedCmd[1:]
	m.response = m.response[1:]

	return resp.err
}

func (m *mock) RootDir() string {
	if m.rootdir == "" {
		return "/tmp/mockrepo"
	}
	return m.rootdir
}

// WithRootDir overrides the reported repository toplevel.
func (m *mock) WithRootDir(dir string) *mock {
	m.rootdir = dir
	return m
}

func (m *mock) ExpectationsMet() {
	m.assert.Empty(m.expectedCmd, "expected additional git commands")
}

func (m *mock) ExpectRemote(repoURL string) *mock {
	response := fmt.Sprintf("origin  %s (fetch)\norigin  %s (push)", repoURL, repoURL)
	return m.Expect("remote -v").Respond(response)
}

func (m *mock) ExpectFetch(remote string, branches ...string) *mock {
	refspecs := ""
	for _, branch := range branches {
		refspecs += fmt.Sprintf(" +refs/heads/%s:refs/remotes/%s/%s", branch, remote, branch)
	}
	return m.Expect("fetch --no-tags %s%s", remote, refspecs)
}

func (m *mock) ExpectDiffNameOnly(rangeSpec string) *mock {
	return m.Expect("diff --name-only %s", rangeSpec)
}

func (m *mock) ExpectDiff(rangeSpec string) *mock {
	return m.Expect("diff %s", rangeSpec)
}

func (m *mock) Expect(cmd string, args ...interface{}) *mock {
	m.expectedCmd = append(m.expectedCmd, "git "+fmt.Sprintf(cmd, args...))
	m.response = append(m.response, cmdresponse{})
	return m
}

// Respond sets the canned output for the most recently expected command.
func (m *mock) Respond(output string) *mock {
	m.response[len(m.response)-1].output = output
	return m
}

// Fail sets the canned error for the most recently expected command.
func (m *mock) Fail(err error, output string) *mock {
	m.response[len(m.response)-1] = cmdresponse{output: output, err: err}
	return m
}
