/*
   Copyright 2026 The Zeturn Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package adapter

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"zeturn.dev/zerr"
	"zeturn.dev/zerr/apis"
	"zeturn.dev/zerr/extract"
)

func TestPublicMsg(t *testing.T) {
	require := require.New(t)

	shown := zerr.E("user not found", zerr.WithCodeOption("not_found"), zerr.WithShowOption())
	require.Equal("user not found", PublicMsg(&shown))

	hidden := zerr.E("pg: connection refused", zerr.WithCodeOption("unavailable"))
	require.Equal(extract.UnknownMsg, PublicMsg(&hidden))

	require.Equal(extract.UnknownMsg, PublicMsg(nil))

	// a user-facing failure with an empty message still gets the fallback
	empty := zerr.Failure{Code: "not_found", Show: true}
	require.Equal(extract.UnknownMsg, PublicMsg(&empty))
}

func TestToView_AppliesShowPolicy(t *testing.T) {
	require := require.New(t)

	hidden := zerr.E("pg: connection refused", zerr.WithCodeOption("unavailable"))
	v := ToView(&hidden)
	require.Equal("unavailable", v.Code)
	require.Equal(extract.UnknownMsg, v.Msg)
	require.False(v.Show)

	shown := zerr.E("user not found", zerr.WithCodeOption("not_found"), zerr.WithShowOption())
	v = ToView(&shown)
	require.Equal("user not found", v.Msg)
	require.True(v.Show)

	require.Zero(ToView(nil))
}

func TestToDescriptor_CarriesUnredactedMsg(t *testing.T) {
	require := require.New(t)

	hidden := zerr.E("pg: connection refused", zerr.WithCodeOption("unavailable"))
	st := apis.Status{HTTP: http.StatusServiceUnavailable, GRPC: codes.Unavailable}

	d := ToDescriptor(&hidden, st)
	require.Equal("unavailable", d.Code)
	require.Equal("pg: connection refused", d.Msg)
	require.False(d.Show)
	require.Equal(http.StatusServiceUnavailable, d.HTTPStatus)
	require.Equal(int(codes.Unavailable), d.GRPCCode)

	require.Zero(ToDescriptor(nil, st))
}
