package mail

import (
	"context"
	"fmt"
	"io"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
)

// IMAPDialer connects to an IMAP server over implicit TLS.
type IMAPDialer struct {
	Addr     string
	Username string
	Password string
}

// Dial connects and authenticates. The returned Source must be released
// with Logout.
func (d IMAPDialer) Dial(ctx context.Context) (Source, error) {
	c, err := imapclient.DialTLS(d.Addr, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", d.Addr, err)
	}
	if err := c.Login(d.Username, d.Password).Wait(); err != nil {
		c.Close()
		return nil, fmt.Errorf("login: %w", err)
	}
	return &imapSource{client: c}, nil
}

type imapSource struct {
	client *imapclient.Client
}

func (s *imapSource) Select(ctx context.Context, mailbox string) error {
	if _, err := s.client.Select(mailbox, nil).Wait(); err != nil {
		return fmt.Errorf("select %s: %w", mailbox, err)
	}
	return nil
}

func (s *imapSource) Search(ctx context.Context, mode SearchMode) ([]uint32, error) {
	criteria := &imap.SearchCriteria{}
	if mode != ModeAll {
		criteria.NotFlag = []imap.Flag{imap.FlagSeen}
	}
	data, err := s.client.Search(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return data.AllSeqNums(), nil
}

func (s *imapSource) Fetch(ctx context.Context, seqNum uint32) ([]byte, error) {
	fetchCmd := s.client.Fetch(imap.SeqSetNum(seqNum), &imap.FetchOptions{
		BodySection: []*imap.FetchItemBodySection{{}},
	})
	defer fetchCmd.Close()

	msg := fetchCmd.Next()
	if msg == nil {
		return nil, fmt.Errorf("fetch %d: no data", seqNum)
	}
	for {
		item := msg.Next()
		if item == nil {
			break
		}
		section, ok := item.(imapclient.FetchItemDataBodySection)
		if !ok {
			continue
		}
		raw, err := io.ReadAll(section.Literal)
		if err != nil {
			return nil, fmt.Errorf("read message %d: %w", seqNum, err)
		}
		return raw, nil
	}
	return nil, fmt.Errorf("fetch %d: missing body section", seqNum)
}

func (s *imapSource) Logout() error {
	return s.client.Logout().Wait()
}
