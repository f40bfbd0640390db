package generator

// clientTemplate renders the generated client module. The shape is fixed: a
// single electron import, one exported object per group, one async forwarding
// function per method. A method with no parameters renders an empty argument
// list after the route ("invoke(\"G-close\", );"), matching historical output.
const clientTemplate = `import { ipcRenderer } from "electron";

export const api = {
{{- range .Groups}}
  {{.Name}}: {
{{- range .Methods}}
    {{.Name}}: async ({{.ParamDefs}}) => {
      return await ipcRenderer.invoke("{{.Route}}", {{.ParamNames}});
    },
{{- end}}
  },
{{- end}}
};
`
