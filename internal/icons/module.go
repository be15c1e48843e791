package icons

import "fmt"

const moduleLayout = `import {JSX} from "solid-js";

export default function %s(props: JSX.SvgSVGAttributes<SVGSVGElement>) {
  return (
    %s
  )
}`

// RenderModule wraps transformed markup in a default-exported Solid component.
func RenderModule(name, markup string) string {
	return fmt.Sprintf(moduleLayout, name, markup)
}
