package catalog_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/yunfengsay/part-render/catalog"
	"github.com/yunfengsay/part-render/graph"
)

func newBuilder() *catalog.Builder {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return catalog.NewBuilder(graph.DefaultConfig(), log)
}

func TestBuilder_InspectFile(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		source       string
		wantNames    []string
		wantDefaults map[string]bool
		wantErr      bool
	}{
		{
			name: "named and default components",
			path: "src/components/cards.tsx",
			source: `import React from 'react';

export function Button({ label }) {
  return <button>{label}</button>;
}

function Card({ children }) {
  return <div className="card">{children}</div>;
}

export default Card;`,
			wantNames:    []string{"Button", "Card"},
			wantDefaults: map[string]bool{"Button": false, "Card": true},
		},
		{
			name: "arrow component",
			path: "src/Badge.jsx",
			source: `const Badge = ({ text }) => <span className="badge">{text}</span>;

export default Badge;`,
			wantNames:    []string{"Badge"},
			wantDefaults: map[string]bool{"Badge": true},
		},
		{
			name: "memo wrapped component",
			path: "src/Row.jsx",
			source: `import React from 'react';

const Row = React.memo(({ item }) => <li>{item}</li>);

export default Row;`,
			wantNames: []string{"Row"},
		},
		{
			name: "forwardRef wrapped component",
			path: "src/Input.jsx",
			source: `import { forwardRef } from 'react';

const Input = forwardRef((props, ref) => <input ref={ref} {...props} />);

export default Input;`,
			wantNames: []string{"Input"},
		},
		{
			name: "class component",
			path: "src/Panel.tsx",
			source: `import React from 'react';

export class Panel extends React.Component {
  render() {
    return <section>{this.props.children}</section>;
  }
}`,
			wantNames: []string{"Panel"},
		},
		{
			name: "plain helpers are not components",
			path: "src/lib/math.ts",
			source: `export function add(a, b) {
  return a + b;
}

const scale = (x) => x * 2;`,
			wantNames: nil,
		},
		{
			name:    "broken file",
			path:    "src/broken.tsx",
			source:  `export function Oops( { return <div>; }`,
			wantErr: true,
		},
		{
			name:    "typed syntax in plain script",
			path:    "src/legacy.js",
			source:  `export function Tag(props: TagProps) { return <em />; }`,
			wantErr: true,
		},
	}

	builder := newBuilder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := &graph.ProjectFile{Path: tt.path, Content: tt.source, Kind: graph.KindForPath(tt.path)}
			components, err := builder.InspectFile(file)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			var names []string
			for _, component := range components {
				names = append(names, component.Name)
				assert.Equal(t, tt.path, component.FilePath)
			}
			assert.Equal(t, tt.wantNames, names)
			for name, wantDefault := range tt.wantDefaults {
				for _, component := range components {
					if component.Name == name {
						assert.Equal(t, wantDefault, component.IsDefaultExport, "default export flag for %v", name)
					}
				}
			}
		})
	}
}

func TestBuilder_PropExtraction(t *testing.T) {
	source := `import React from 'react';

interface ButtonProps {
  /** Text rendered inside the button */
  label: string;
  variant?: 'primary' | 'secondary';
  disabled?: boolean;
  onClick: () => void;
}

export function Button({ label, variant = 'primary', disabled, onClick }: ButtonProps) {
  return (
    <button className={variant} disabled={disabled} onClick={onClick}>
      {label}
    </button>
  );
}`
	builder := newBuilder()
	components, err := builder.InspectFile(&graph.ProjectFile{
		Path:    "src/Button.tsx",
		Content: source,
		Kind:    graph.KindTypedComponent,
	})
	if !assert.NoError(t, err) || !assert.Len(t, components, 1) {
		return
	}
	button := components[0]
	if !assert.Len(t, button.Props, 4) {
		return
	}

	label := button.GetProp("label")
	if assert.NotNil(t, label) {
		assert.Equal(t, "string", label.Type)
		assert.True(t, label.Required)
		assert.Equal(t, "Text rendered inside the button", label.Description)
	}

	variant := button.GetProp("variant")
	if assert.NotNil(t, variant) {
		assert.False(t, variant.Required)
		assert.Equal(t, "primary", variant.Default)
	}

	disabled := button.GetProp("disabled")
	if assert.NotNil(t, disabled) {
		assert.Equal(t, "boolean", disabled.Type)
		assert.False(t, disabled.Required)
	}

	onClick := button.GetProp("onClick")
	if assert.NotNil(t, onClick) {
		assert.True(t, onClick.Required)
	}
}

func TestBuilder_UntypedPatternProps(t *testing.T) {
	source := `export function Alert({ message, severity = 'info' }) {
  return <div className={severity}>{message}</div>;
}`
	builder := newBuilder()
	components, err := builder.InspectFile(&graph.ProjectFile{
		Path:    "src/Alert.jsx",
		Content: source,
		Kind:    graph.KindComponent,
	})
	if !assert.NoError(t, err) || !assert.Len(t, components, 1) {
		return
	}
	alert := components[0]
	message := alert.GetProp("message")
	if assert.NotNil(t, message) {
		assert.Equal(t, "any", message.Type)
		assert.True(t, message.Required)
	}
	severity := alert.GetProp("severity")
	if assert.NotNil(t, severity) {
		assert.False(t, severity.Required)
		assert.Equal(t, "info", severity.Default)
	}
}

func TestBuilder_UnexportedComponents(t *testing.T) {
	source := `function Secret({ code }) {
  return <b>{code}</b>;
}

export function Public() {
  return <i />;
}`
	file := &graph.ProjectFile{Path: "src/mixed.tsx", Content: source, Kind: graph.KindTypedComponent}

	components, err := newBuilder().InspectFile(file)
	if assert.NoError(t, err) && assert.Len(t, components, 1) {
		assert.Equal(t, "Public", components[0].Name)
	}

	config := graph.DefaultConfig()
	config.IncludeUnexported = true
	permissive := catalog.NewBuilder(config, logrus.New())
	components, err = permissive.InspectFile(file)
	if assert.NoError(t, err) {
		assert.Len(t, components, 2)
	}
}

func TestBuilder_Build(t *testing.T) {
	project := &graph.Project{Name: "webapp", RootPath: "/tmp/webapp"}
	project.AddFile(&graph.ProjectFile{
		Path:    "src/Button.tsx",
		Content: `export function Button({ label }) { return <button>{label}</button>; }`,
		Kind:    graph.KindTypedComponent,
	})
	project.AddFile(&graph.ProjectFile{
		Path:    "src/Button.test.tsx",
		Content: `export function Button({ label }) { return <button>{label}</button>; }`,
		Kind:    graph.KindTypedComponent,
	})
	project.AddFile(&graph.ProjectFile{
		Path:    "src/broken.tsx",
		Content: `export function Oops( { return <div>; }`,
		Kind:    graph.KindTypedComponent,
	})

	result := newBuilder().Build(project)
	assert.Equal(t, 1, result.Len())
	button := result.Lookup("Button")
	if assert.NotNil(t, button) {
		assert.Equal(t, "src/Button.tsx", button.FilePath)
	}
}
