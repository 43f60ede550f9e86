package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yunfengsay/part-render/analyzer"
	"github.com/yunfengsay/part-render/graph"
)

func TestAnalyzer_Analyze(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		wantMissing []string
		wantImports int
		wantErr     bool
	}{
		{
			name: "aliased call helper",
			source: `const App = () => {
  return el('div', { className: 'app' }, 'hello');
};`,
			wantMissing: []string{"el"},
		},
		{
			name: "component references without imports",
			source: `function Dashboard() {
  return (
    <div>
      <Header title="Stats" />
      <Chart data={series} />
    </div>
  );
}`,
			wantMissing: []string{"Chart", "Header", "series"},
		},
		{
			name: "imports satisfy references",
			source: `import React, { useState } from 'react';
import Button from './Button';

function Counter() {
  const [count, setCount] = useState(0);
  return <Button onClick={() => setCount(count + 1)}>{count}</Button>;
}`,
			wantMissing: nil,
			wantImports: 2,
		},
		{
			name: "parameters and locals are declared",
			source: `function Row({ item, onSelect }) {
  const label = item.name;
  return <li onClick={() => onSelect(item)}>{label}</li>;
}`,
			wantMissing: nil,
		},
		{
			name: "host globals are not missing",
			source: `function save(data) {
  console.log(JSON.stringify(data));
  return fetch('/api', { method: 'POST', body: JSON.stringify(data) });
}`,
			wantMissing: nil,
		},
		{
			name: "lowercase tags are intrinsic",
			source: `const Box = () => <div><span>ok</span></div>;`,
			wantMissing: nil,
		},
		{
			name:    "broken syntax",
			source:  `function App( { return <div>; }`,
			wantErr: true,
		},
	}

	a := analyzer.New(graph.DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := a.Analyze([]byte(tt.source), "fragment.tsx")
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, analyzer.ErrParse)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, tt.wantMissing, ctx.MissingIdentifiers)
			if tt.wantImports > 0 {
				assert.Len(t, ctx.Imports, tt.wantImports)
			}
		})
	}
}

func TestAnalyzer_AnalyzeDeterministic(t *testing.T) {
	source := `function Page() {
  return <Layout><Widget /><Gauge value={reading} /></Layout>;
}`
	a := analyzer.New(graph.DefaultConfig())
	first, err := a.Analyze([]byte(source), "page.tsx")
	if !assert.NoError(t, err) {
		return
	}
	for i := 0; i < 3; i++ {
		next, err := a.Analyze([]byte(source), "page.tsx")
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, first.MissingIdentifiers, next.MissingIdentifiers)
		assert.Equal(t, first.UsedIdentifiers, next.UsedIdentifiers)
	}
}

func TestAnalyzer_MissingSubsetOfUsed(t *testing.T) {
	source := `import dayjs from 'dayjs';

function Clock({ tz }) {
  const now = dayjs().tz(tz);
  return <TimeDisplay value={now} format={displayFormat} />;
}`
	a := analyzer.New(graph.DefaultConfig())
	ctx, err := a.Analyze([]byte(source), "clock.tsx")
	if !assert.NoError(t, err) {
		return
	}
	for _, name := range ctx.MissingIdentifiers {
		assert.True(t, ctx.Uses(name), "missing identifier %v not in used set", name)
		assert.False(t, analyzer.IsBuiltin(name), "builtin %v reported missing", name)
	}
	assert.Equal(t, []string{"TimeDisplay", "displayFormat"}, ctx.MissingIdentifiers)
}

func TestAnalyzer_ImportForms(t *testing.T) {
	source := `import React from 'react';
import * as Icons from './icons';
import { useMemo, useState as useLocal } from 'react';
import './styles.css';

function Chip() {
  const state = useLocal(null);
  return <Icons.Tag />;
}`
	a := analyzer.New(graph.DefaultConfig())
	ctx, err := a.Analyze([]byte(source), "chip.tsx")
	if !assert.NoError(t, err) {
		return
	}
	if !assert.Len(t, ctx.Imports, 4) {
		return
	}
	assert.True(t, ctx.Imports[0].Specifiers[0].IsDefault)
	assert.True(t, ctx.Imports[1].Specifiers[0].IsNamespace)
	assert.Equal(t, "Icons", ctx.Imports[1].Specifiers[0].Name)
	assert.Equal(t, "useLocal", ctx.Imports[2].Specifiers[1].Alias)
	assert.Empty(t, ctx.Imports[3].Specifiers)
	assert.Empty(t, ctx.MissingIdentifiers)
}
