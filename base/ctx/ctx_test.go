package ctx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValues() {
	c := WithValues(Background(), map[string]interface{}{
		"listingId": "42",
		"tokenId":   "7",
	})
	ts.Equal("42", c.Value("listingId"))
	ts.Equal("7", c.Value("tokenId"))
}

func (ts *testsuite) TestWithCancel() {
	c, cancel := WithCancel(Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	select {
	case <-c.Done():
	case <-time.After(time.Second):
		ts.Fail("context not cancelled")
	}
}

func (ts *testsuite) TestTimeout() {
	c, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()
	<-c.Done()
	ts.Equal("context deadline exceeded", c.Err().Error())
}

func (ts *testsuite) TestDetach() {
	parent, cancel := WithCancel(WithValue(Background(), "requestID", "abc"))
	detached := Detach(parent)
	cancel()

	ts.Error(parent.Err())
	ts.NoError(detached.Err())
	ts.Nil(detached.Value("requestID"))
}
