package renderer

// fieldShaderWGSL renders every dot in one instanced draw. Instance data
// is packed into two vec4s: pos_scale carries the world position and the
// final sphere radius, rot_opacity carries the two rotation angles and the
// per-instance opacity. The rotation matrix is Ry(a) * Rx(b) built from
// the angles in the vertex stage, so the CPU never touches matrices per dot.
const fieldShaderWGSL = `
struct Globals {
    view_proj: mat4x4<f32>,
    tint: vec4<f32>,
};

struct Instance {
    pos_scale: vec4<f32>,
    rot_opacity: vec4<f32>,
};

@group(0) @binding(0) var<uniform> globals: Globals;
@group(0) @binding(1) var<storage, read> instances: array<Instance>;

struct VertexOut {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) normal: vec3<f32>,
    @location(1) opacity: f32,
};

@vertex
fn vs_main(
    @location(0) position: vec3<f32>,
    @location(1) normal: vec3<f32>,
    @builtin(instance_index) instance_index: u32,
) -> VertexOut {
    let inst = instances[instance_index];

    let ca = cos(inst.rot_opacity.x);
    let sa = sin(inst.rot_opacity.x);
    let cb = cos(inst.rot_opacity.y);
    let sb = sin(inst.rot_opacity.y);

    // Ry(a) * Rx(b), column-major.
    let rot = mat3x3<f32>(
        vec3<f32>(ca, 0.0, -sa),
        vec3<f32>(sa * sb, cb, ca * sb),
        vec3<f32>(sa * cb, -sb, ca * cb),
    );

    let world = rot * (position * inst.pos_scale.w) + inst.pos_scale.xyz;

    var out: VertexOut;
    out.clip_position = globals.view_proj * vec4<f32>(world, 1.0);
    out.normal = rot * normal;
    out.opacity = inst.rot_opacity.z;
    return out;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
    let light_dir = normalize(vec3<f32>(0.4, 0.6, 1.0));
    let n = normalize(in.normal);
    let lambert = max(dot(n, light_dir), 0.0) * 0.7 + 0.3;

    let alpha = clamp(in.opacity * globals.tint.a, 0.0, 1.0);
    // Premultiplied alpha to match the One / OneMinusSrcAlpha blend state.
    let rgb = globals.tint.rgb * lambert * alpha;
    return vec4<f32>(rgb, alpha);
}
`
