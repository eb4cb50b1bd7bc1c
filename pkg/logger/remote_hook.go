// Copyright © 2022 The VLSIR Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// RemoteEvent is the JSON body posted for every log entry.
type RemoteEvent struct {
	ID      string    `json:"id"`
	Task    string    `json:"task,omitempty"`
	Type    string    `json:"type"`
	Level   string    `json:"level"`
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

// RemoteLogHook to send logs via remote URL.
type RemoteLogHook struct {
	sync.Mutex

	TaskName string
	URL      string
	client   *http.Client
}

func NewRemoteLogHook(remoteURL, taskName string) (*RemoteLogHook, error) {
	reqURL, err := url.Parse(remoteURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid remote logger url %s", remoteURL)
	}
	if reqURL.Scheme != "http" && reqURL.Scheme != "https" {
		return nil, errors.Errorf("remote logger url %s must use http or https", remoteURL)
	}

	return &RemoteLogHook{
		TaskName: taskName,
		URL:      reqURL.String(),
		client:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (hook *RemoteLogHook) post(body []byte) error {
	// #nosec
	resp, err := hook.client.Post(hook.URL, "application/json", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "bad POST request to server")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("bad status code from server: [%d] %s", resp.StatusCode, resp.Status)
	}
	return nil
}

func (hook *RemoteLogHook) Fire(entry *logrus.Entry) error {
	e := *entry
	e.Buffer = nil
	line, err := (&Formatter{DisableColor: true, HideLogTime: true}).Format(&e)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Unable to read entry, %v", err)
		return err
	}

	t := "Info"
	if entry.Level <= logrus.ErrorLevel {
		t = "Error"
	}

	body, err := json.Marshal(&RemoteEvent{
		ID:      uuid.New().String(),
		Task:    hook.TaskName,
		Type:    t,
		Level:   entry.Level.String(),
		Time:    entry.Time,
		Message: string(bytes.TrimRight(line, "\n")),
	})
	if err != nil {
		return err
	}

	hook.Lock()
	defer hook.Unlock()

	return hook.post(body)
}

func (hook *RemoteLogHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
	}
}
