// Copyright 2025 go-highway Authors
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

package intdiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestLoggerDefaultIsSilent(t *testing.T) {
	require.NotNil(t, Logger())
	assert.False(t, Logger().Core().Enabled(zapcore.ErrorLevel))
}

func TestLoggerInPlaceFallback(t *testing.T) {
	logs := observeLogs(t)

	a := []int32{9, 8, 7}
	d := int32(2)
	Divide[int32](Contiguous(a), Scalar(&d), Contiguous(a), len(a))

	entries := logs.FilterMessage("aliased operands, dividing element by element").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "intdiv", entries[0].LoggerName)
	assert.EqualValues(t, 3, entries[0].ContextMap()["n"])
}

func TestLoggerRejectedIndexStream(t *testing.T) {
	logs := observeLogs(t)

	_, err := DivideAt([]int32{1}, []int{5}, []int32{1})
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("rejected index stream").Len())
}

func TestLoggerQuietOnFastPath(t *testing.T) {
	logs := observeLogs(t)

	src := []int32{9, 8, 7}
	dst := make([]int32, len(src))
	d := int32(2)
	Divide[int32](Contiguous(src), Scalar(&d), Contiguous(dst), len(src))
	assert.Zero(t, logs.Len())
}

func TestSetLoggerNilRestoresNop(t *testing.T) {
	SetLogger(zap.NewExample())
	SetLogger(nil)
	assert.False(t, Logger().Core().Enabled(zapcore.ErrorLevel))
}
